package application

import "errors"

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrUserBlocked  = errors.New("user is not active")
	ErrNotFound     = errors.New("not found")
)
