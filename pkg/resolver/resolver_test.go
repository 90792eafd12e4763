package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/UnAfraid/batchload/pkg/dataloader"
	"github.com/UnAfraid/batchload/pkg/scope"
)

type testProduct struct {
	Id    string
	Title string
}

type productFetcher struct {
	mu      sync.Mutex
	batches [][]string
}

func (f *productFetcher) fetch(_ context.Context, ids []string) ([]*testProduct, error) {
	f.mu.Lock()
	f.batches = append(f.batches, append([]string(nil), ids...))
	f.mu.Unlock()

	products := make([]*testProduct, len(ids))
	for i, id := range ids {
		products[i] = &testProduct{
			Id:    id,
			Title: "title " + id,
		}
	}
	return products, nil
}

func (f *productFetcher) factory() func() *dataloader.Loader[string, *testProduct] {
	return func() *dataloader.Loader[string, *testProduct] {
		return dataloader.New(dataloader.Config[string, *testProduct]{
			Fetch: f.fetch,
		})
	}
}

func TestSiblingFieldResolversShareOneProductBatch(t *testing.T) {
	fetcher := &productFetcher{}
	registry := scope.NewRegistry()
	defer registry.Close()
	ctx := scope.NewContext(context.Background(), registry)

	// Two sibling resolvers within one resolution pass ask for different
	// products; both requests must land in the same batch.
	first, err := Field(ctx, "product", fetcher.factory(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Field(ctx, "product", fetcher.factory(), "234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	registry.Flush()

	awaitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	firstProduct, err := first.Await(awaitCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if firstProduct.Id != "123" || firstProduct.Title != "title 123" {
		t.Fatalf("expected product 123 with title 123, got %+v", firstProduct)
	}

	secondProduct, err := second.Await(awaitCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secondProduct.Id != "234" || secondProduct.Title != "title 234" {
		t.Fatalf("expected product 234 with title 234, got %+v", secondProduct)
	}

	fetcher.mu.Lock()
	defer fetcher.mu.Unlock()
	if len(fetcher.batches) != 1 {
		t.Fatalf("expected exactly one batch, got %d", len(fetcher.batches))
	}
	batch := fetcher.batches[0]
	if len(batch) != 2 || batch[0] != "123" || batch[1] != "234" {
		t.Fatalf("expected batch [123 234], got %v", batch)
	}
}

func TestFieldsPreservesKeyOrder(t *testing.T) {
	fetcher := &productFetcher{}
	registry := scope.NewRegistry()
	defer registry.Close()
	ctx := scope.NewContext(context.Background(), registry)

	deferreds, err := Fields(ctx, "product", fetcher.factory(), []string{"3", "1", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	registry.Flush()

	awaitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	for i, id := range []string{"3", "1", "2"} {
		p, err := deferreds[i].Await(awaitCtx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Id != id {
			t.Fatalf("expected product %s at position %d, got %s", id, i, p.Id)
		}
	}
}

func TestFieldWithoutScopeRegistryFails(t *testing.T) {
	fetcher := &productFetcher{}

	if _, err := Field(context.Background(), "product", fetcher.factory(), "123"); !errors.Is(err, scope.ErrRegistryNotFound) {
		t.Fatalf("expected ErrRegistryNotFound, got %v", err)
	}
}
