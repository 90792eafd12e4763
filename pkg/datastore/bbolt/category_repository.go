package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"go.etcd.io/bbolt"

	"github.com/UnAfraid/batchload/pkg/category"
)

const (
	categoryBucket = "category"
)

type categoryRepository struct {
	db *bbolt.DB
}

func NewCategoryRepository(db *bbolt.DB) category.Repository {
	return &categoryRepository{
		db: db,
	}
}

func (r *categoryRepository) FindOne(_ context.Context, options *category.FindOneOptions) (*category.Category, error) {
	return dbView(r.db, categoryBucket, func(bucket *bbolt.Bucket) (*category.Category, error) {
		if idOption := options.IdOption; idOption != nil {
			jsonState := bucket.Get([]byte(idOption.Id))
			if jsonState == nil {
				return nil, nil
			}

			var c *category.Category
			if err := json.Unmarshal(jsonState, &c); err != nil {
				return nil, fmt.Errorf("failed to unmarshal category: %w", err)
			}
			return c, nil
		}
		return nil, nil
	})
}

func (r *categoryRepository) FindAll(_ context.Context, options *category.FindOptions) ([]*category.Category, error) {
	return dbView(r.db, categoryBucket, func(bucket *bbolt.Bucket) ([]*category.Category, error) {
		var categories []*category.Category
		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var cat *category.Category
			if err := json.Unmarshal(v, &cat); err != nil {
				return nil, fmt.Errorf("failed to unmarshal category: %w", err)
			}

			if len(options.Ids) != 0 {
				if slices.Contains(options.Ids, cat.Id) {
					categories = append(categories, cat)
				}
				continue
			}

			categories = append(categories, cat)
		}
		return categories, nil
	})
}

func (r *categoryRepository) Create(_ context.Context, cat *category.Category) (*category.Category, error) {
	return dbUpdate(r.db, categoryBucket, func(bucket *bbolt.Bucket) (*category.Category, error) {
		jsonState, err := json.Marshal(cat)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal category: %w", err)
		}

		if err := bucket.Put([]byte(cat.Id), jsonState); err != nil {
			return nil, err
		}
		return cat, nil
	})
}
