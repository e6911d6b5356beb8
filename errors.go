package partsledger

import "errors"

var (
	// ErrInvalidInput reports a purchase or sale that cannot be recorded.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownPart reports a sale of a part that is not in stock.
	ErrUnknownPart = errors.New("part not in stock")
	// ErrInsufficientStock reports a sale of more units than available.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrNotFound reports an unknown record id.
	ErrNotFound = errors.New("not found")

	ErrPasswordTooShort  = errors.New("password must be at least 4 characters long")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrIncorrectPassword = errors.New("incorrect password")
)
