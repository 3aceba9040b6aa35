package domain

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrMenuItemNotFound = errors.New("menu item not found")
var ErrCartItemNotFound = errors.New("cart item not found")
var ErrChargeFailed = errors.New("charge authorization failed")
var ErrCartReconcile = errors.New("cart reconciliation failed")
var ErrInvalidInput = errors.New("invalid input")
