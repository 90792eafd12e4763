package product

import (
	"context"
)

type Repository interface {
	FindOne(ctx context.Context, options *FindOneOptions) (*Product, error)
	FindAll(ctx context.Context, options *FindOptions) ([]*Product, error)
	Create(ctx context.Context, product *Product) (*Product, error)
	Delete(ctx context.Context, productId string) (*Product, error)
}
