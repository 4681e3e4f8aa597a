package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("build version is not specified")
)
