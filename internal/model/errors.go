package model

import "errors"

// ErrNotFound is returned by stores when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned by stores when a unique key is already taken.
var ErrAlreadyExists = errors.New("already exists")
