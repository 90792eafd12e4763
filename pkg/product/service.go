package product

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service interface {
	FindProduct(ctx context.Context, options *FindOneOptions) (*Product, error)
	FindProducts(ctx context.Context, options *FindOptions) ([]*Product, error)
	CreateProduct(ctx context.Context, options *CreateOptions) (*Product, error)
	DeleteProduct(ctx context.Context, productId string) (*Product, error)
}

type service struct {
	productRepository Repository
}

func NewService(productRepository Repository) Service {
	return &service{
		productRepository: productRepository,
	}
}

func (s *service) FindProduct(ctx context.Context, options *FindOneOptions) (*Product, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return s.productRepository.FindOne(ctx, options)
}

func (s *service) FindProducts(ctx context.Context, options *FindOptions) ([]*Product, error) {
	return s.productRepository.FindAll(ctx, options)
}

func (s *service) CreateProduct(ctx context.Context, options *CreateOptions) (*Product, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	createdProduct, err := s.productRepository.Create(ctx, &Product{
		Id:         uuid.NewString(),
		Title:      options.Title,
		CategoryId: options.CategoryId,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	logrus.
		WithField("productId", createdProduct.Id).
		WithField("title", createdProduct.Title).
		Info("product created")

	return createdProduct, nil
}

func (s *service) DeleteProduct(ctx context.Context, productId string) (*Product, error) {
	if len(productId) == 0 {
		return nil, ErrIdRequired
	}

	deletedProduct, err := s.productRepository.Delete(ctx, productId)
	if err != nil {
		return nil, err
	}

	logrus.
		WithField("productId", deletedProduct.Id).
		Info("product deleted")

	return deletedProduct, nil
}
