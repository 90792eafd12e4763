package category

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service interface {
	FindCategory(ctx context.Context, options *FindOneOptions) (*Category, error)
	FindCategories(ctx context.Context, options *FindOptions) ([]*Category, error)
	CreateCategory(ctx context.Context, options *CreateOptions) (*Category, error)
}

type service struct {
	categoryRepository Repository
}

func NewService(categoryRepository Repository) Service {
	return &service{
		categoryRepository: categoryRepository,
	}
}

func (s *service) FindCategory(ctx context.Context, options *FindOneOptions) (*Category, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return s.categoryRepository.FindOne(ctx, options)
}

func (s *service) FindCategories(ctx context.Context, options *FindOptions) ([]*Category, error) {
	return s.categoryRepository.FindAll(ctx, options)
}

func (s *service) CreateCategory(ctx context.Context, options *CreateOptions) (*Category, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	createdCategory, err := s.categoryRepository.Create(ctx, &Category{
		Id:        uuid.NewString(),
		Name:      options.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	logrus.
		WithField("categoryId", createdCategory.Id).
		WithField("name", createdCategory.Name).
		Info("category created")

	return createdCategory, nil
}
