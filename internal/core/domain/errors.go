package domain

import "errors"

var ErrMissingFields = errors.New("missing required fields")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username or password")
