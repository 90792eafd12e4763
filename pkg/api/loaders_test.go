package api

import (
	"context"
	"sync"
	"testing"

	"github.com/UnAfraid/batchload/pkg/category"
	"github.com/UnAfraid/batchload/pkg/product"
)

type stubProductService struct {
	mu       sync.Mutex
	batches  [][]string
	products map[string]*product.Product
}

func (s *stubProductService) FindProduct(_ context.Context, options *product.FindOneOptions) (*product.Product, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return s.products[options.IdOption.Id], nil
}

func (s *stubProductService) FindProducts(_ context.Context, options *product.FindOptions) ([]*product.Product, error) {
	s.mu.Lock()
	s.batches = append(s.batches, append([]string(nil), options.Ids...))
	s.mu.Unlock()

	var products []*product.Product
	if len(options.Ids) == 0 {
		for _, p := range s.products {
			products = append(products, p)
		}
		return products, nil
	}
	// Deliberately out of request order: the batch function must realign.
	for _, p := range s.products {
		for _, id := range options.Ids {
			if p.Id == id {
				products = append(products, p)
			}
		}
	}
	return products, nil
}

func (s *stubProductService) CreateProduct(_ context.Context, options *product.CreateOptions) (*product.Product, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	p := &product.Product{
		Id:         "created",
		Title:      options.Title,
		CategoryId: options.CategoryId,
	}
	s.products[p.Id] = p
	return p, nil
}

func (s *stubProductService) DeleteProduct(_ context.Context, productId string) (*product.Product, error) {
	p, ok := s.products[productId]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	delete(s.products, productId)
	return p, nil
}

type stubCategoryService struct {
	mu         sync.Mutex
	batches    [][]string
	categories map[string]*category.Category
}

func (s *stubCategoryService) FindCategory(_ context.Context, options *category.FindOneOptions) (*category.Category, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return s.categories[options.IdOption.Id], nil
}

func (s *stubCategoryService) FindCategories(_ context.Context, options *category.FindOptions) ([]*category.Category, error) {
	s.mu.Lock()
	s.batches = append(s.batches, append([]string(nil), options.Ids...))
	s.mu.Unlock()

	var categories []*category.Category
	for _, c := range s.categories {
		for _, id := range options.Ids {
			if c.Id == id {
				categories = append(categories, c)
			}
		}
	}
	return categories, nil
}

func (s *stubCategoryService) CreateCategory(_ context.Context, options *category.CreateOptions) (*category.Category, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	c := &category.Category{
		Id:   "created",
		Name: options.Name,
	}
	s.categories[c.Id] = c
	return c, nil
}

func TestProductBatchFnAlignsResultsWithRequestedIds(t *testing.T) {
	productService := &stubProductService{
		products: map[string]*product.Product{
			"123": {Id: "123", Title: "title 123"},
			"234": {Id: "234", Title: "title 234"},
		},
	}

	batchFn := productBatchFn(productService)
	products, err := batchFn(context.Background(), []string{"234", "123", "345"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(products) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(products))
	}
	if products[0] == nil || products[0].Id != "234" {
		t.Fatalf("expected first entry to map to 234, got %#v", products[0])
	}
	if products[1] == nil || products[1].Id != "123" {
		t.Fatalf("expected second entry to map to 123, got %#v", products[1])
	}
	if products[2] != nil {
		t.Fatalf("expected missing id to map to nil, got %#v", products[2])
	}

	productService.mu.Lock()
	defer productService.mu.Unlock()
	if len(productService.batches) != 1 {
		t.Fatalf("expected one service call, got %d", len(productService.batches))
	}
}

func TestCategoryBatchFnRequestsAllIdsInOneCall(t *testing.T) {
	categoryService := &stubCategoryService{
		categories: map[string]*category.Category{
			"c1": {Id: "c1", Name: "books"},
		},
	}

	batchFn := categoryBatchFn(categoryService)
	categories, err := batchFn(context.Background(), []string{"c1", "c2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(categories) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(categories))
	}
	if categories[0] == nil || categories[0].Name != "books" {
		t.Fatalf("expected first entry to map to books, got %#v", categories[0])
	}
	if categories[1] != nil {
		t.Fatalf("expected missing id to map to nil, got %#v", categories[1])
	}

	categoryService.mu.Lock()
	defer categoryService.mu.Unlock()
	if len(categoryService.batches) != 1 {
		t.Fatalf("expected one service call, got %d", len(categoryService.batches))
	}
}
