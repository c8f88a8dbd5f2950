package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("account already exists")
	ErrNotLoggedIn        = errors.New("not logged in")

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrNotRecipeAuthor = errors.New("recipe belongs to another account")

	ErrNoActiveCookingSession = errors.New("no cooking session in progress")
)
