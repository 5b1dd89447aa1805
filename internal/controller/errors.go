// Package controller owns the in-memory resource collections shown by the
// panel and the reconciliation rules that keep them consistent with the
// backend's responses.  This file defines error types that are reused
// across all resource controllers.  Each operation wraps its underlying
// failure in an operation-specific type so handlers can pick the right
// user-facing message while errors.As/Is still reaches the API client's
// sentinel values underneath.
package controller

import "errors"

// ErrNotConfirmed is returned by Delete when the destructive-action
// confirmation was not given.  No network call has been made.
var ErrNotConfirmed = errors.New("delete not confirmed")

// ErrNoEdit is returned by BeginEdit when the identifier does not match
// any record in the collection.
var ErrNoEdit = errors.New("no record with that id")

// FetchError wraps a failed list fetch.  The collection keeps its
// previous value when this is returned.
type FetchError struct{ Err error }

func (e *FetchError) Error() string { return "fetch failed: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// CreateError wraps a failed create.  Collection and draft are unchanged.
type CreateError struct{ Err error }

func (e *CreateError) Error() string { return "create failed: " + e.Err.Error() }
func (e *CreateError) Unwrap() error { return e.Err }

// UpdateError wraps a failed update.  The collection is unchanged and
// edit mode stays open.
type UpdateError struct{ Err error }

func (e *UpdateError) Error() string { return "update failed: " + e.Err.Error() }
func (e *UpdateError) Unwrap() error { return e.Err }

// DeleteError wraps a failed delete.  The collection is unchanged.
type DeleteError struct{ Err error }

func (e *DeleteError) Error() string { return "delete failed: " + e.Err.Error() }
func (e *DeleteError) Unwrap() error { return e.Err }
