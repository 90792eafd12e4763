package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/UnAfraid/searchindex"
	"go.etcd.io/bbolt"

	"github.com/UnAfraid/batchload/pkg/product"
)

const (
	productBucket = "product"
)

type productRepository struct {
	db *bbolt.DB
}

func NewProductRepository(db *bbolt.DB) product.Repository {
	return &productRepository{
		db: db,
	}
}

func (r *productRepository) FindOne(_ context.Context, options *product.FindOneOptions) (*product.Product, error) {
	return dbView(r.db, productBucket, func(bucket *bbolt.Bucket) (*product.Product, error) {
		if idOption := options.IdOption; idOption != nil {
			jsonState := bucket.Get([]byte(idOption.Id))
			if jsonState == nil {
				return nil, nil
			}

			var p *product.Product
			if err := json.Unmarshal(jsonState, &p); err != nil {
				return nil, fmt.Errorf("failed to unmarshal product: %w", err)
			}
			return p, nil
		}
		return nil, nil
	})
}

func (r *productRepository) FindAll(_ context.Context, options *product.FindOptions) ([]*product.Product, error) {
	return dbView(r.db, productBucket, func(bucket *bbolt.Bucket) ([]*product.Product, error) {
		var products []*product.Product
		var productsCount int
		var searchList searchindex.SearchList[*product.Product]
		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			productsCount++
			var p *product.Product
			if err := json.Unmarshal(v, &p); err != nil {
				return nil, fmt.Errorf("failed to unmarshal product: %w", err)
			}

			var optionsLen int
			if len(options.Ids) != 0 {
				optionsLen++
				if slices.Contains(options.Ids, p.Id) {
					products = append(products, p)
					continue
				}
			}

			if len(options.CategoryId) != 0 {
				optionsLen++
				if p.CategoryId == options.CategoryId {
					products = append(products, p)
					continue
				}
			}

			if len(options.Query) != 0 {
				optionsLen++
				searchList = append(searchList, &searchindex.SearchItem[*product.Product]{
					Key:  p.Title,
					Data: p,
				})
			}

			if optionsLen == 0 {
				products = append(products, p)
			}
		}

		if len(options.Query) != 0 {
			searchIndex := searchindex.NewSearchIndex(searchList, productsCount, nil, nil, true, nil)
			matches := searchIndex.Search(searchindex.SearchParams[*product.Product]{
				Text:       options.Query,
				OutputSize: productsCount,
				Matching:   searchindex.Beginning,
			})
			products = append(products, matches...)
		}

		return products, nil
	})
}

func (r *productRepository) Create(_ context.Context, p *product.Product) (*product.Product, error) {
	return dbUpdate(r.db, productBucket, func(bucket *bbolt.Bucket) (*product.Product, error) {
		id := []byte(p.Id)
		if bucket.Get(id) != nil {
			return nil, product.ErrProductIdAlreadyExists
		}

		jsonState, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal product: %w", err)
		}

		if err := bucket.Put(id, jsonState); err != nil {
			return nil, err
		}
		return p, nil
	})
}

func (r *productRepository) Delete(_ context.Context, productId string) (*product.Product, error) {
	return dbUpdate(r.db, productBucket, func(bucket *bbolt.Bucket) (*product.Product, error) {
		id := []byte(productId)
		jsonState := bucket.Get(id)
		if jsonState == nil {
			return nil, product.ErrProductNotFound
		}

		var p *product.Product
		if err := json.Unmarshal(jsonState, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product: %w", err)
		}

		if err := bucket.Delete(id); err != nil {
			return nil, err
		}
		return p, nil
	})
}
