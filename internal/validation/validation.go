// Poemclock - Poem/1 Compatible Time-Synchronized Content Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/poemclock

// Package validation provides struct validation using go-playground/validator
// v10 behind a thread-safe singleton instance.
//
// Request bodies carry size-bound tags only (max=...); time semantics are
// validated by the scheduling resolver so its typed errors reach the device
// unchanged.
//
//	var req models.ComposeRequest
//	if err := validation.ValidateStruct(&req); err != nil {
//	    // respond 400 with err.Error()
//	}
package validation

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// instance returns the singleton validator, creating it on first use.
// The validator caches struct metadata, so reuse matters for throughput.
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates a struct against its validate tags.
// Returns nil when valid, or an error whose message names the first
// offending field and constraint.
func ValidateStruct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Errorf("field %s failed validation: %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("field %s failed validation: %s", fe.Field(), fe.Tag())
}
