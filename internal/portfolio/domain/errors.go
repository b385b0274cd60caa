package domain

import "errors"

var (
	ErrImageNotFound   = errors.New("image not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrStoreSave       = errors.New("failed to persist portfolio data")
)
