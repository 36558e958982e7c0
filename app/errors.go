package app

import "errors"

// Validation failures reject the action and leave state untouched; the UI
// surfaces them to the user.
var (
	ErrNameRequired      = errors.New("name is required")
	ErrStaffNameRequired = errors.New("staff name is required")
	ErrItemRequired      = errors.New("a catalog item must be selected")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidFrequency  = errors.New("update frequency must be daily or weekly")
	ErrInvalidItemType   = errors.New("unknown menu item type")
	ErrNegativeCost      = errors.New("cost must not be negative")
	ErrInvalidDate       = errors.New("date must be a YYYY-MM-DD calendar day")
	ErrInvalidRange      = errors.New("start date must not be after end date")
	ErrWeightsPending    = errors.New("all ending inventory weights must be entered first")
)
