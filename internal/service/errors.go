package service

import "errors"

// ErrInvalidInput marks request validation failures outside the split
// rules, such as a missing name or a payer who is not a group member.
// The API layer maps it to a client error.
var ErrInvalidInput = errors.New("invalid input")
