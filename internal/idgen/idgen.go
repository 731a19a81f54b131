package idgen

import "github.com/google/uuid"

// NewFunc produces a new identifier
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique run identifier
func New() string { return NewFunc() }
