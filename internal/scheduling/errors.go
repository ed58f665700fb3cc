package scheduling

import "errors"

var (
	ErrTextRequired    = errors.New("text is required")
	ErrInvalidNavigate = errors.New("navigate must be next or prev")
)
