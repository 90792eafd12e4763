package product

import (
	"errors"
)

var (
	ErrIdRequired             = errors.New("id is required")
	ErrTitleRequired          = errors.New("title is required")
	ErrCategoryIdRequired     = errors.New("category id is required")
	ErrProductNotFound        = errors.New("product not found")
	ErrProductIdAlreadyExists = errors.New("product id already exists")
	ErrOneOptionRequired      = errors.New("one option is required")
	ErrCreateOptionsRequired  = errors.New("create options are required")
)
