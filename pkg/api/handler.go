package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/UnAfraid/batchload/internal/adapt"
	"github.com/UnAfraid/batchload/pkg/category"
	"github.com/UnAfraid/batchload/pkg/dataloader"
	"github.com/UnAfraid/batchload/pkg/product"
	"github.com/UnAfraid/batchload/pkg/resolver"
)

type handler struct {
	productService  product.Service
	categoryService category.Service
	loaderWait      time.Duration
	loaderMaxBatch  int
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productDeferred, err := resolver.Field(ctx, productLoaderTag, h.productLoader(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	p, err := productDeferred.Await(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, product.ErrProductNotFound)
		return
	}

	categoryDeferred, err := resolver.Field(ctx, categoryLoaderTag, h.categoryLoader(), p.CategoryId)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	c, err := categoryDeferred.Await(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, ToProduct(p, c))
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.productService.FindProducts(ctx, &product.FindOptions{
		Query: r.URL.Query().Get("query"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	// Every product row asks for its category independently, the shared
	// scope coalesces them into one categories fetch.
	categoryIds := adapt.Array(products, func(p *product.Product) string {
		return p.CategoryId
	})
	categoryDeferreds, err := resolver.Fields(ctx, categoryLoaderTag, h.categoryLoader(), categoryIds)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	var errs *multierror.Error
	categories := make([]*category.Category, len(categoryDeferreds))
	for i, categoryDeferred := range categoryDeferreds {
		c, err := categoryDeferred.Await(ctx)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		categories[i] = c
	}
	if err := errs.ErrorOrNil(); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	response := make([]*Product, 0, len(products))
	for i, p := range products {
		response = append(response, ToProduct(p, categories[i]))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var createProduct CreateProduct
	if err := json.NewDecoder(r.Body).Decode(&createProduct); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := h.productService.CreateProduct(r.Context(), &product.CreateOptions{
		Title:      createProduct.Title,
		CategoryId: createProduct.CategoryId,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, ToProduct(p, nil))
}

func (h *handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.productService.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, ToProduct(p, nil))
}

func (h *handler) getCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categoryDeferred, err := resolver.Field(ctx, categoryLoaderTag, h.categoryLoader(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	c, err := categoryDeferred.Await(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, category.ErrCategoryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, ToCategory(c))
}

func (h *handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var createCategory CreateCategory
	if err := json.NewDecoder(r.Body).Decode(&createCategory); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.categoryService.CreateCategory(r.Context(), &category.CreateOptions{
		Name: createCategory.Name,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, ToCategory(c))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	var mismatchError *dataloader.MismatchError
	if errors.As(err, &mismatchError) {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
	})
}
