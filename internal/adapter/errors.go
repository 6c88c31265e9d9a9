// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package adapter

import (
	"errors"
	"fmt"
)

// Kind classifies an adaptation failure.
type Kind int

const (
	// KindUnknownInput means an extractor named a step missing from the inputs.
	KindUnknownInput Kind = iota + 1
	// KindMissingKey means the step exists but its results lack the key.
	KindMissingKey
	// KindUnhashableKey means a map recipe key resolved to a value that cannot
	// be used as a Go map key.
	KindUnhashableKey
)

func (k Kind) String() string {
	switch k {
	case KindUnknownInput:
		return "unknown_input"
	case KindMissingKey:
		return "missing_key"
	case KindUnhashableKey:
		return "unhashable_key"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	ErrUnknownInput  = errors.New("unknown input")
	ErrMissingKey    = errors.New("missing key")
	ErrUnhashableKey = errors.New("unhashable key")
)

// Error is the only error type produced while resolving recipes.
type Error struct {
	Kind Kind
	// Input is the step name the failing extractor referenced.
	Input string
	// Key is the result key the failing extractor referenced.
	Key string
	// KeyType is the Go type of an unhashable resolved map key.
	KeyType string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownInput:
		return fmt.Sprintf("no such input: '%s'", e.Input)
	case KindMissingKey:
		return fmt.Sprintf("input '%s' didn't have '%s' in its result", e.Input, e.Key)
	case KindUnhashableKey:
		return fmt.Sprintf("map key resolved to unhashable value of type %s", e.KeyType)
	default:
		return "adapter error"
	}
}

// Is lets errors.Is match an *Error against the package sentinels.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindUnknownInput:
		return target == ErrUnknownInput
	case KindMissingKey:
		return target == ErrMissingKey
	case KindUnhashableKey:
		return target == ErrUnhashableKey
	}
	return false
}
