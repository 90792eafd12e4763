package category

import (
	"context"
)

type Repository interface {
	FindOne(ctx context.Context, options *FindOneOptions) (*Category, error)
	FindAll(ctx context.Context, options *FindOptions) ([]*Category, error)
	Create(ctx context.Context, category *Category) (*Category, error)
}
