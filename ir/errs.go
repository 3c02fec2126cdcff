package ir

import (
	"errors"

	"github.com/signadot/pack/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrNotFound  = errors.New("not found")
	ErrBadFormat = format.ErrBadFormat
)
