package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput  = errors.New("malformed input")
	ErrQueryFailure    = errors.New("query failed")
	ErrUnparseableLine = errors.New("unparseable line")
	ErrUnknownDriver   = errors.New("unknown store driver")
)

// UnparseableLineError reports a store row that did not have the expected shape.
// Line is the row as the store returned it, before token translation.
type UnparseableLineError struct {
	Section string
	Line    string
}

func (e *UnparseableLineError) Error() string {
	return fmt.Sprintf("unknown %s line %q", e.Section, e.Line)
}

func (e *UnparseableLineError) Unwrap() error {
	return ErrUnparseableLine
}
