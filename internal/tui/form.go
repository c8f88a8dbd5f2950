// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nroshal/tastebook/internal/service"
	"github.com/nroshal/tastebook/models"
)

const (
	formFieldTitle = iota
	formFieldDescription
	formFieldCuisine
	formFieldDifficulty
	formFieldPrep
	formFieldCook
	formFieldServings
	formFieldIngredients
	formFieldSteps
	formFieldCount
)

// RecipeFormModel is the create/edit form for a recipe. Scalar fields are
// text inputs; ingredients and steps are free-text areas parsed on submit:
// one ingredient per line as "name, qty, unit", one step per line.
type RecipeFormModel struct {
	ctx     context.Context
	recipes service.ClientRecipeService

	inputs      []textinput.Model
	ingredients textarea.Model
	steps       textarea.Model
	focus       int
	editing     bool
	recipeID    string
	submitting  bool
	errMsg      string
}

func NewRecipeFormModel(ctx context.Context, recipes service.ClientRecipeService) *RecipeFormModel {
	labels := []string{"title", "description", "cuisine", "difficulty (Easy/Medium/Hard)", "prep minutes", "cook minutes", "servings"}

	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = label
		inputs[i].Width = 40
	}
	inputs[formFieldTitle].CharLimit = 200
	inputs[formFieldTitle].Focus()

	ingredients := textarea.New()
	ingredients.Placeholder = "Flour, 500, g"
	ingredients.SetWidth(44)
	ingredients.SetHeight(4)

	steps := textarea.New()
	steps.Placeholder = "Knead the dough"
	steps.SetWidth(44)
	steps.SetHeight(4)

	return &RecipeFormModel{
		ctx:         ctx,
		recipes:     recipes,
		inputs:      inputs,
		ingredients: ingredients,
		steps:       steps,
	}
}

func (m *RecipeFormModel) Init() tea.Cmd {
	m.resetForm()
	return textinput.Blink
}

func (m *RecipeFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editRecipeMsg:
		m.fillFrom(msg.recipe)
		return m, textinput.Blink
	case recipeSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		recipeID := msg.recipe.ID
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{Page: "detail", Payload: openRecipeMsg{recipeID: recipeID, from: "mine"}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "mine"} }
		case "tab":
			m.focusIndex(m.focus + 1)
			return m, nil
		case "shift+tab":
			m.focusIndex(m.focus - 1)
			return m, nil
		case "ctrl+s":
			if m.submitting {
				return m, nil
			}
			in, err := m.buildInput()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(in)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case formFieldIngredients:
		m.ingredients, cmd = m.ingredients.Update(msg)
	case formFieldSteps:
		m.steps, cmd = m.steps.Update(msg)
	default:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m *RecipeFormModel) View() string {
	var b strings.Builder

	labels := []string{"Title", "Description", "Cuisine", "Difficulty", "Prep min", "Cook min", "Servings"}
	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%-12s │ [%s]\n", label, m.inputs[i].View()))
	}

	b.WriteString("\nIngredients (one per line: name, qty, unit):\n")
	b.WriteString(m.ingredients.View())
	b.WriteString("\n\nSteps (one per line):\n")
	b.WriteString(m.steps.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else if m.editing {
		b.WriteString("\n[Save changes: ctrl+s]\n")
	} else {
		b.WriteString("\n[Publish: ctrl+s]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	title := "NEW RECIPE"
	if m.editing {
		title = "EDIT RECIPE"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+s: save")
}

func (m *RecipeFormModel) buildInput() (models.RecipeInput, error) {
	title := strings.TrimSpace(m.inputs[formFieldTitle].Value())
	if title == "" {
		return models.RecipeInput{}, fmt.Errorf("title is required")
	}

	difficulty := strings.TrimSpace(m.inputs[formFieldDifficulty].Value())
	switch difficulty {
	case "Easy", "Medium", "Hard":
	default:
		return models.RecipeInput{}, fmt.Errorf("difficulty must be Easy, Medium or Hard")
	}

	prep, err := parseIntField(m.inputs[formFieldPrep].Value(), "prep minutes")
	if err != nil {
		return models.RecipeInput{}, err
	}
	cook, err := parseIntField(m.inputs[formFieldCook].Value(), "cook minutes")
	if err != nil {
		return models.RecipeInput{}, err
	}
	servings, err := parseIntField(m.inputs[formFieldServings].Value(), "servings")
	if err != nil {
		return models.RecipeInput{}, err
	}

	ingredients, err := parseIngredients(m.ingredients.Value())
	if err != nil {
		return models.RecipeInput{}, err
	}
	if len(ingredients) == 0 {
		return models.RecipeInput{}, fmt.Errorf("at least one ingredient is required")
	}

	steps := parseSteps(m.steps.Value())
	if len(steps) == 0 {
		return models.RecipeInput{}, fmt.Errorf("at least one step is required")
	}

	return models.RecipeInput{
		Title:       title,
		Description: strings.TrimSpace(m.inputs[formFieldDescription].Value()),
		CuisineType: strings.TrimSpace(m.inputs[formFieldCuisine].Value()),
		Difficulty:  difficulty,
		PrepTimeMin: prep,
		CookTimeMin: cook,
		Servings:    servings,
		Ingredients: ingredients,
		Steps:       steps,
	}, nil
}

func parseIntField(v, name string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative number", name)
	}
	return n, nil
}

func parseIngredients(raw string) ([]models.Ingredient, error) {
	var out []models.Ingredient
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("ingredient %q must be \"name, qty, unit\"", line)
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("ingredient %q has a non-numeric quantity", line)
		}
		out = append(out, models.Ingredient{
			Name: strings.TrimSpace(parts[0]),
			Qty:  qty,
			Unit: strings.TrimSpace(parts[2]),
		})
	}
	return out, nil
}

func parseSteps(raw string) []models.Step {
	var out []models.Step
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, models.Step{Text: line})
	}
	return out
}

func (m *RecipeFormModel) fillFrom(recipe models.Recipe) {
	m.resetForm()
	m.editing = true
	m.recipeID = recipe.ID

	m.inputs[formFieldTitle].SetValue(recipe.Title)
	m.inputs[formFieldDescription].SetValue(recipe.Description)
	m.inputs[formFieldCuisine].SetValue(recipe.CuisineType)
	m.inputs[formFieldDifficulty].SetValue(recipe.Difficulty)
	m.inputs[formFieldPrep].SetValue(strconv.Itoa(recipe.PrepTimeMin))
	m.inputs[formFieldCook].SetValue(strconv.Itoa(recipe.CookTimeMin))
	m.inputs[formFieldServings].SetValue(strconv.Itoa(recipe.Servings))

	var ingredients []string
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, fmt.Sprintf("%s, %g, %s", ing.Name, ing.Qty, ing.Unit))
	}
	m.ingredients.SetValue(strings.Join(ingredients, "\n"))

	var steps []string
	for _, step := range recipe.Steps {
		steps = append(steps, step.Text)
	}
	m.steps.SetValue(strings.Join(steps, "\n"))
}

func (m *RecipeFormModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.ingredients.SetValue("")
	m.ingredients.Blur()
	m.steps.SetValue("")
	m.steps.Blur()
	m.focus = formFieldTitle
	m.inputs[formFieldTitle].Focus()
	m.editing = false
	m.recipeID = ""
	m.submitting = false
	m.errMsg = ""
}

func (m *RecipeFormModel) focusIndex(next int) {
	switch m.focus {
	case formFieldIngredients:
		m.ingredients.Blur()
	case formFieldSteps:
		m.steps.Blur()
	default:
		m.inputs[m.focus].Blur()
	}

	m.focus = (next + formFieldCount) % formFieldCount

	switch m.focus {
	case formFieldIngredients:
		m.ingredients.Focus()
	case formFieldSteps:
		m.steps.Focus()
	default:
		m.inputs[m.focus].Focus()
	}
}

func (m *RecipeFormModel) cmdSave(in models.RecipeInput) tea.Cmd {
	ctx := m.ctx
	recipes := m.recipes
	editing := m.editing
	recipeID := m.recipeID

	return func() tea.Msg {
		if editing {
			recipe, err := recipes.Update(ctx, recipeID, in)
			return recipeSavedMsg{recipe: recipe, err: err}
		}
		recipe, err := recipes.Create(ctx, in)
		return recipeSavedMsg{recipe: recipe, err: err}
	}
}
