package client

import "errors"

var (
	ErrNoAdapter      = errors.New("no items adapter provided")
	ErrUsage          = errors.New("usage: client [-a addr] list|get NAME|create NAME [DETAILS]|update NAME [-name N] [-details D]|delete NAME|health")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNothingToDo    = errors.New("update needs -name or -details")
)
