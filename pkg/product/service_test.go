package product

import (
	"context"
	"errors"
	"testing"
)

type fakeRepository struct {
	products map[string]*Product
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		products: make(map[string]*Product),
	}
}

func (r *fakeRepository) FindOne(_ context.Context, options *FindOneOptions) (*Product, error) {
	return r.products[options.IdOption.Id], nil
}

func (r *fakeRepository) FindAll(_ context.Context, options *FindOptions) ([]*Product, error) {
	var products []*Product
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, nil
}

func (r *fakeRepository) Create(_ context.Context, p *Product) (*Product, error) {
	if _, ok := r.products[p.Id]; ok {
		return nil, ErrProductIdAlreadyExists
	}
	r.products[p.Id] = p
	return p, nil
}

func (r *fakeRepository) Delete(_ context.Context, productId string) (*Product, error) {
	p, ok := r.products[productId]
	if !ok {
		return nil, ErrProductNotFound
	}
	delete(r.products, productId)
	return p, nil
}

func TestCreateProductValidatesOptions(t *testing.T) {
	service := NewService(newFakeRepository())

	if _, err := service.CreateProduct(context.Background(), nil); !errors.Is(err, ErrCreateOptionsRequired) {
		t.Fatalf("expected ErrCreateOptionsRequired, got %v", err)
	}

	if _, err := service.CreateProduct(context.Background(), &CreateOptions{CategoryId: "c1"}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	if _, err := service.CreateProduct(context.Background(), &CreateOptions{Title: "title"}); !errors.Is(err, ErrCategoryIdRequired) {
		t.Fatalf("expected ErrCategoryIdRequired, got %v", err)
	}
}

func TestCreateProductGeneratesIdAndTimestamps(t *testing.T) {
	service := NewService(newFakeRepository())

	created, err := service.CreateProduct(context.Background(), &CreateOptions{
		Title:      "title 123",
		CategoryId: "c1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.Id) == 0 {
		t.Fatal("expected a generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestFindProductRequiresOneOption(t *testing.T) {
	service := NewService(newFakeRepository())

	if _, err := service.FindProduct(context.Background(), nil); !errors.Is(err, ErrOneOptionRequired) {
		t.Fatalf("expected ErrOneOptionRequired, got %v", err)
	}
	if _, err := service.FindProduct(context.Background(), &FindOneOptions{IdOption: &IdOption{}}); !errors.Is(err, ErrIdRequired) {
		t.Fatalf("expected ErrIdRequired, got %v", err)
	}
}

func TestDeleteProductRequiresId(t *testing.T) {
	service := NewService(newFakeRepository())

	if _, err := service.DeleteProduct(context.Background(), ""); !errors.Is(err, ErrIdRequired) {
		t.Fatalf("expected ErrIdRequired, got %v", err)
	}
	if _, err := service.DeleteProduct(context.Background(), "missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
