package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrMissingField           = errors.New("required field is missing")
	ErrMissingDeliveryAddress = errors.New("delivery address is required for delivery orders")
	ErrInvalidOrderType       = errors.New("order_type must be one of: pickup, delivery")
	ErrPastDate               = errors.New("booking date and time must be in the future")
	ErrInvalidDateTime        = errors.New("booking date or time is malformed")
	ErrInvalidStatus          = errors.New("unknown status value")
	ErrItemUnavailable        = errors.New("menu item is not available")

	// ErrPartialOrder marks the saga outcome where the order row was created
	// but its items were not. The order is not rolled back.
	ErrPartialOrder = errors.New("order created but items could not be saved")
)

// PartialOrderError carries the id of the order row left behind when the
// items insert fails. errors.Is(err, ErrPartialOrder) matches it.
type PartialOrderError struct {
	OrderID string
	Err     error
}

func (e *PartialOrderError) Error() string {
	return fmt.Sprintf("order %s created but items could not be saved: %v", e.OrderID, e.Err)
}

func (e *PartialOrderError) Unwrap() error { return e.Err }

func (e *PartialOrderError) Is(target error) bool { return target == ErrPartialOrder }
