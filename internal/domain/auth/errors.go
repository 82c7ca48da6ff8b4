package auth

import "errors"

var (
	ErrInvalidSerial = errors.New("invalid serial number")
	ErrInvalidToken  = errors.New("invalid or expired token")
)
