// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/nroshal/tastebook/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldTitle targets the recipe title.
	FieldTitle = "title"

	// FieldDifficulty targets the difficulty label.
	FieldDifficulty = "difficulty"

	// FieldDurations targets the preparation and cooking time fields.
	FieldDurations = "durations"

	// FieldServings targets the servings count.
	FieldServings = "servings"

	// FieldIngredients targets the ingredient list.
	FieldIngredients = "ingredients"

	// FieldSteps targets the walkthrough step list.
	FieldSteps = "steps"
)

// allowedDifficulties is the exhaustive set of difficulty labels accepted by
// the validator and by the server.
var allowedDifficulties = []string{"Easy", "Medium", "Hard"}

type recipeInputValidator struct{}

// NewRecipeInputValidator returns a Validator for [models.RecipeInput]
// payloads submitted on recipe create and update.
func NewRecipeInputValidator() Validator {
	return &recipeInputValidator{}
}

// Validate checks the given value, which must be a models.RecipeInput.
// Without field names the whole input is validated; with field names only
// the named fields are checked.
func (v *recipeInputValidator) Validate(_ context.Context, value any, fields ...string) error {
	in, ok := value.(models.RecipeInput)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDifficulty, FieldDurations, FieldServings, FieldIngredients, FieldSteps}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldTitle:
			err = v.validateTitle(in)
		case FieldDifficulty:
			err = v.validateDifficulty(in)
		case FieldDurations:
			err = v.validateDurations(in)
		case FieldServings:
			err = v.validateServings(in)
		case FieldIngredients:
			err = v.validateIngredients(in)
		case FieldSteps:
			err = v.validateSteps(in)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *recipeInputValidator) validateTitle(in models.RecipeInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func (v *recipeInputValidator) validateDifficulty(in models.RecipeInput) error {
	for _, d := range allowedDifficulties {
		if in.Difficulty == d {
			return nil
		}
	}
	return fmt.Errorf("%w: got %q", ErrInvalidDifficulty, in.Difficulty)
}

func (v *recipeInputValidator) validateDurations(in models.RecipeInput) error {
	if in.PrepTimeMin < 0 || in.CookTimeMin < 0 {
		return ErrNegativeDuration
	}
	return nil
}

func (v *recipeInputValidator) validateServings(in models.RecipeInput) error {
	if in.Servings < 0 {
		return ErrNegativeServings
	}
	return nil
}

func (v *recipeInputValidator) validateIngredients(in models.RecipeInput) error {
	if len(in.Ingredients) == 0 {
		return ErrNoIngredients
	}
	for _, ing := range in.Ingredients {
		if strings.TrimSpace(ing.Name) == "" || ing.Qty <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidIngredient, ing.Name)
		}
	}
	return nil
}

func (v *recipeInputValidator) validateSteps(in models.RecipeInput) error {
	if len(in.Steps) == 0 {
		return ErrNoSteps
	}
	for _, step := range in.Steps {
		if strings.TrimSpace(step.Text) == "" {
			return ErrEmptyStep
		}
	}
	return nil
}
