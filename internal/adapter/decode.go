// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package adapter

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the adapted arguments into target, which must be a pointer to
// a struct or map. Struct fields are matched by their `arg` tag, falling back
// to a case-insensitive field name match. Numbers, strings and bools are
// coerced where needed, and strings decode into time.Duration and RFC 3339
// time.Time fields.
func (a Arguments) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "arg",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any(a)); err != nil {
		return fmt.Errorf("failed to decode arguments: %w", err)
	}
	return nil
}
