// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle        = errors.New("title is required")
	ErrInvalidDifficulty = errors.New("difficulty must be Easy, Medium or Hard")
	ErrNegativeDuration  = errors.New("durations cannot be negative")
	ErrNegativeServings  = errors.New("servings cannot be negative")
	ErrNoIngredients     = errors.New("at least one ingredient is required")
	ErrInvalidIngredient = errors.New("invalid ingredient")
	ErrNoSteps           = errors.New("at least one step is required")
	ErrEmptyStep         = errors.New("step text cannot be empty")
)
