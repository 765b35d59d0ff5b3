package service

import "errors"

var (
	ErrStoreNil             = errors.New("task store is nil")
	ErrInvalidRange         = errors.New("start time must be before end time")
	ErrDuplicateDescription = errors.New("a task with this description already exists")
)
