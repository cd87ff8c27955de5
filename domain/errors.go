package domain

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
)
