package userService

import "errors"

var ErrInvalidEmail = errors.New("invalid email")
