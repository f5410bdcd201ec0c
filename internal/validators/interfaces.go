// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the records users create
// and edit: subjects, topics, decks, cards, countdowns, notes, papers and
// timetable slots.
//
// Rules are declared as `validate` struct tags on the models and enforced by
// go-playground/validator. Failures are reported as a [ValidationError] whose
// fields are named after the JSON tags and whose messages are translated to
// English.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
