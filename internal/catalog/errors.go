package catalog

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid product data")
	ErrDuplicateCode = errors.New("product code already exists")
	ErrNotFound      = errors.New("product not found")
	ErrIO            = errors.New("catalog file i/o failed")
)
