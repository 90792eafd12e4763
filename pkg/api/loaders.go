package api

import (
	"context"

	"github.com/UnAfraid/batchload/pkg/category"
	"github.com/UnAfraid/batchload/pkg/dataloader"
	"github.com/UnAfraid/batchload/pkg/product"
)

const (
	productLoaderTag  = "product"
	categoryLoaderTag = "category"
)

func (h *handler) productLoader() func() *dataloader.Loader[string, *product.Product] {
	return func() *dataloader.Loader[string, *product.Product] {
		return dataloader.New(dataloader.Config[string, *product.Product]{
			Fetch:    productBatchFn(h.productService),
			Wait:     h.loaderWait,
			MaxBatch: h.loaderMaxBatch,
		})
	}
}

func (h *handler) categoryLoader() func() *dataloader.Loader[string, *category.Category] {
	return func() *dataloader.Loader[string, *category.Category] {
		return dataloader.New(dataloader.Config[string, *category.Category]{
			Fetch:    categoryBatchFn(h.categoryService),
			Wait:     h.loaderWait,
			MaxBatch: h.loaderMaxBatch,
		})
	}
}

func productBatchFn(productService product.Service) dataloader.BatchFunc[string, *product.Product] {
	return func(ctx context.Context, ids []string) ([]*product.Product, error) {
		products, err := productService.FindProducts(ctx, &product.FindOptions{
			Ids: ids,
		})
		if err != nil {
			return nil, err
		}
		return dataloader.OrderByKeys(ids, products, productKey), nil
	}
}

func categoryBatchFn(categoryService category.Service) dataloader.BatchFunc[string, *category.Category] {
	return func(ctx context.Context, ids []string) ([]*category.Category, error) {
		categories, err := categoryService.FindCategories(ctx, &category.FindOptions{
			Ids: ids,
		})
		if err != nil {
			return nil, err
		}
		return dataloader.OrderByKeys(ids, categories, categoryKey), nil
	}
}

func productKey(p *product.Product) string {
	if p == nil {
		return ""
	}
	return p.Id
}

func categoryKey(c *category.Category) string {
	if c == nil {
		return ""
	}
	return c.Id
}
