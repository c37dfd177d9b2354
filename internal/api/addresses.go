package api

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

type AddressService struct{ c *Client }

func (s *AddressService) List(ctx context.Context) ([]model.Address, error) {
	var out []model.Address
	err := s.c.get(ctx, "/addresses", nil, "addresses", &out)
	return out, err
}

func (s *AddressService) Get(ctx context.Context, addressID int64) (model.Address, error) {
	var out model.Address
	err := s.c.get(ctx, "/addresses/"+pathID(addressID), nil, "address", &out)
	return out, err
}

func (s *AddressService) Create(ctx context.Context, in model.Address) (model.Address, error) {
	var out model.Address
	err := s.c.post(ctx, "/addresses", in, "address", &out)
	return out, err
}

func (s *AddressService) Update(ctx context.Context, addressID int64, in model.Address) (model.Address, error) {
	var out model.Address
	err := s.c.put(ctx, "/addresses/"+pathID(addressID), in, "address", &out)
	return out, err
}

func (s *AddressService) Delete(ctx context.Context, addressID int64) error {
	return s.c.delete(ctx, "/addresses/"+pathID(addressID), nil)
}

func (s *AddressService) SetDefault(ctx context.Context, addressID int64) error {
	return s.c.put(ctx, "/addresses/"+pathID(addressID)+"/default", nil, "", nil)
}
