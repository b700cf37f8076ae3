package costing

import "errors"

var (
	ErrUnknownCategory        = errors.New("unknown area category")
	ErrNegativeQuantityOrCost = errors.New("negative quantity or cost")
	ErrInvalidRate            = errors.New("invalid adjustment rate")
	ErrEstimateLocked         = errors.New("estimate locked")
	ErrNegativeArea           = errors.New("negative square footage")
	ErrInvalidRateTable       = errors.New("invalid rate table")
)
