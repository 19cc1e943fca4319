package recurrence

import "errors"

var ErrInvalidScope = errors.New("the scope must be one of SINGLE, FUTURE, ALL")
