package domain

import "errors"

var (
	ErrShopNotFound    = errors.New("shop not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrEntryNotFound   = errors.New("queue entry not found")
)

var (
	ErrActiveEntryExists  = errors.New("customer already has an active entry in this queue")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrShopBusy           = errors.New("shop is already serving at full capacity")
	ErrCancelNotPermitted = errors.New("cancellation not permitted for this actor")
)

var (
	ErrInvalidPage = errors.New("page out of range")
	ErrValidation  = errors.New("validation error")
)
