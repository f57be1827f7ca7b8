package apperr

import "errors"

var (
	ErrConfig        = errors.New("invalid configuration")
	ErrSetupRequired = errors.New("setup required")
	ErrNetwork       = errors.New("network failure")
	ErrDecode        = errors.New("malformed response")
	ErrMissingField  = errors.New("missing field")
	ErrUnknownStyle  = errors.New("unknown style")
)
