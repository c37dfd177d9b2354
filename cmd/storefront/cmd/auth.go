package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"

	"github.com/spf13/cobra"
)

var loginFlags struct {
	email    string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and remember the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			u, err := rt.Session.Login(ctx, loginFlags.email, loginFlags.password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", u.Name, u.Email)
			return nil
		})
	},
}

var registerFlags struct {
	name     string
	email    string
	password string
	phone    string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			u, err := rt.Session.Register(ctx, api.RegisterInput{
				Name:     registerFlags.name,
				Email:    registerFlags.email,
				Password: registerFlags.password,
				Phone:    registerFlags.phone,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", u.Name)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			if err := rt.Session.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			out := cmd.OutOrStdout()
			u := rt.Session.Current()
			if u == nil {
				fmt.Fprintln(out, "Not signed in")
				return nil
			}
			fmt.Fprintf(out, "%s <%s>", u.Name, u.Email)
			if u.Role != "" {
				fmt.Fprintf(out, " (%s)", u.Role)
			}
			fmt.Fprintln(out)

			token, err := rt.Tokens.Token(ctx)
			if err != nil || token == "" {
				return err
			}
			info, err := api.ParseTokenInfo(token)
			if err != nil {
				// 不透明なトークンもある
				return nil
			}
			if !info.ExpiresAt.IsZero() {
				state := "valid"
				if info.Expired(time.Now()) {
					state = "expired"
				}
				fmt.Fprintf(out, "Token %s until %s\n", state, info.ExpiresAt.Local().Format(time.RFC1123))
			}
			return nil
		})
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginFlags.email, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginFlags.password, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerFlags.name, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerFlags.email, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerFlags.password, "password", "", "account password")
	registerCmd.Flags().StringVar(&registerFlags.phone, "phone", "", "phone number")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
