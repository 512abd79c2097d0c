package core

import "errors"

// Common errors.
var (
	ErrSlotOutOfRange = errors.New("slot is outside the menu")
	ErrItemNotFound   = errors.New("item not found")
	ErrNoSession      = errors.New("no item is being edited")
	ErrUnknownField   = errors.New("unknown menu field")
	ErrInvalidSize    = errors.New("size must be a multiple of 9 between 9 and 54")
)
