package errors

import "fmt"

var (
	ErrEmptyUser = fmt.Errorf("roster entry requires a user address")
)
