package api

import (
	"time"

	"github.com/UnAfraid/batchload/pkg/category"
	"github.com/UnAfraid/batchload/pkg/product"
)

type Product struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Category  *Category `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Category struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type CreateProduct struct {
	Title      string `json:"title"`
	CategoryId string `json:"categoryId"`
}

type CreateCategory struct {
	Name string `json:"name"`
}

func ToProduct(p *product.Product, c *category.Category) *Product {
	if p == nil {
		return nil
	}
	return &Product{
		Id:        p.Id,
		Title:     p.Title,
		Category:  ToCategory(c),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToCategory(c *category.Category) *Category {
	if c == nil {
		return nil
	}
	return &Category{
		Id:   c.Id,
		Name: c.Name,
	}
}
