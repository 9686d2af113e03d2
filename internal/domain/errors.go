package domain

import "errors"

// Domain errors
var (
	ErrInvalidCategoryType   = errors.New("invalid category type")
	ErrUnknownParentCategory = errors.New("parent category does not exist")
)
