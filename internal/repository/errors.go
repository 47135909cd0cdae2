package repository

import "errors"

// Backend-neutral errors. Both the gorm and the Mongo implementations
// translate their driver errors into these so services never import a driver.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)
