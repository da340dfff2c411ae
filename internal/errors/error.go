// Package errors provides the error taxonomy shared by the record store and both console programs.
package errors

import "errors"

var ErrValidation = errors.New("validation failed")
var ErrNotFound = errors.New("record not found")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrEmptyInput = errors.New("no records to process")
var ErrInvalidRate = errors.New("conversion rate must be a positive number")
