package domain

import "errors"

var (
	ErrInvalidID       = errors.New("invalid id")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrInvalidTitle    = errors.New("invalid title")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidCategory = errors.New("invalid category")
)
