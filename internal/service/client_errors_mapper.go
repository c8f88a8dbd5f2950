// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package service

import (
	"errors"

	"github.com/nroshal/tastebook/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrInvalidCredentials

	case errors.Is(err, adapter.ErrConflict):
		return ErrAccountExists

	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotRecipeAuthor

	case errors.Is(err, adapter.ErrNotFound):
		return ErrRecipeNotFound
	}

	return err
}

// isServerUnreachable reports whether err looks like a connectivity failure
// rather than a server verdict. The adapter wraps every received HTTP error
// response in one of its sentinels, so an error matching none of them means
// the request never got a response.
func isServerUnreachable(err error) bool {
	if err == nil {
		return false
	}

	for _, sentinel := range []error{
		adapter.ErrBadRequest,
		adapter.ErrUnauthorized,
		adapter.ErrForbidden,
		adapter.ErrNotFound,
		adapter.ErrConflict,
		adapter.ErrInternalServerError,
	} {
		if errors.Is(err, sentinel) {
			return false
		}
	}

	return true
}
