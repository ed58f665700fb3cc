package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrAlreadyExists  = errors.New("record already exists")
	ErrCorruptRecord  = errors.New("stored record cannot be decoded")
)
