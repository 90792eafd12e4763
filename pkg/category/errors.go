package category

import (
	"errors"
)

var (
	ErrIdRequired            = errors.New("id is required")
	ErrNameRequired          = errors.New("name is required")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrOneOptionRequired     = errors.New("one option is required")
	ErrCreateOptionsRequired = errors.New("create options are required")
)
