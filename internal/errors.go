package internal

import "github.com/pkg/errors"

// ErrNilArguments is returned by constructors that receive a nil
// required argument.
var ErrNilArguments = errors.New("arguments cannot be nil")
