package models

import "errors"

var (
	ErrEmptySeries    = errors.New("price series is empty")
	ErrInvalidPayload = errors.New("invalid request payload")
)
