package main

import "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/cmd/storefront/cmd"

func main() {
	cmd.Execute()
}
