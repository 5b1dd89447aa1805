package controller

import (
    "context"
    "sync"
)

// Resource is any record type with a collection identifier.  Identifiers
// are unique within a collection whenever the panel believes it is in
// sync with the backend.
type Resource interface {
    Key() int64
}

// Ops binds a controller to the API client calls for one resource.  The
// token is the backend API token of the session performing the call.
type Ops[T Resource] struct {
    List   func(ctx context.Context, token string) ([]T, error)
    Create func(ctx context.Context, token string, draft T) (T, error)
    Update func(ctx context.Context, token string, id int64, draft T) (T, error)
    Delete func(ctx context.Context, token string, id int64) error
}

// List owns one resource collection.  The reconciliation policy is
// trust-the-response: a successful mutation updates the collection from
// the single record the backend returned, and no follow-up re-fetch is
// made.  Out-of-band changes made by another client therefore stay
// invisible until the next Load, which happens on every page view.
//
// All operations serialize on one mutex, so when two mutations race the
// one applied last wins, same as the backend sees them.
type List[T Resource] struct {
    ops Ops[T]

    mu      sync.Mutex
    records []T
    loading bool
    edit    EditState[T]
}

// NewList returns a controller with an empty collection.
func NewList[T Resource](ops Ops[T]) *List[T] {
    return &List[T]{ops: ops}
}

// Load fetches the full list and replaces the collection with it.  On
// failure the collection keeps its previous (stale but present) value
// and a *FetchError is returned.  The loading flag is cleared on both
// paths.
func (l *List[T]) Load(ctx context.Context, token string) error {
    l.mu.Lock()
    l.loading = true
    l.mu.Unlock()

    recs, err := l.ops.List(ctx, token)

    l.mu.Lock()
    defer l.mu.Unlock()
    l.loading = false
    if err != nil {
        return &FetchError{Err: err}
    }
    l.records = recs
    return nil
}

// Create submits the draft and appends the backend's record, which may
// carry server-assigned fields such as the identifier, to the end of the
// collection.  On success any creating-mode draft is cleared.  On failure
// collection and edit state are untouched and a *CreateError is returned.
func (l *List[T]) Create(ctx context.Context, token string, draft T) (T, error) {
    rec, err := l.ops.Create(ctx, token, draft)
    l.mu.Lock()
    defer l.mu.Unlock()
    if err != nil {
        var zero T
        return zero, &CreateError{Err: err}
    }
    l.records = append(l.records, rec)
    if l.edit.Mode == ModeCreating {
        l.edit = EditState[T]{}
    }
    return rec, nil
}

// Update submits the full draft for the identifier and, on success,
// replaces the one matching record with the backend's record, keeping
// the collection order unchanged, and exits edit mode.  On failure the
// collection is untouched, edit mode stays open, and a *UpdateError is
// returned.
func (l *List[T]) Update(ctx context.Context, token string, id int64, draft T) (T, error) {
    rec, err := l.ops.Update(ctx, token, id, draft)
    l.mu.Lock()
    defer l.mu.Unlock()
    if err != nil {
        var zero T
        return zero, &UpdateError{Err: err}
    }
    for i := range l.records {
        if l.records[i].Key() == id {
            l.records[i] = rec
            break
        }
    }
    if l.edit.Mode == ModeEditing && l.edit.ID == id {
        l.edit = EditState[T]{}
    }
    return rec, nil
}

// Delete removes the record after an explicit confirmation.  Without
// confirmation no network call is made and ErrNotConfirmed is returned
// with the collection unchanged.  On backend failure a *DeleteError is
// returned and the collection is unchanged.
func (l *List[T]) Delete(ctx context.Context, token string, id int64, confirmed bool) error {
    if !confirmed {
        return ErrNotConfirmed
    }
    if err := l.ops.Delete(ctx, token, id); err != nil {
        return &DeleteError{Err: err}
    }
    l.mu.Lock()
    defer l.mu.Unlock()
    for i := range l.records {
        if l.records[i].Key() == id {
            l.records = append(l.records[:i], l.records[i+1:]...)
            break
        }
    }
    return nil
}

// Snapshot returns a copy of the collection for rendering.
func (l *List[T]) Snapshot() []T {
    l.mu.Lock()
    defer l.mu.Unlock()
    out := make([]T, len(l.records))
    copy(out, l.records)
    return out
}

// Find returns the record with the given identifier.
func (l *List[T]) Find(id int64) (T, bool) {
    l.mu.Lock()
    defer l.mu.Unlock()
    for i := range l.records {
        if l.records[i].Key() == id {
            return l.records[i], true
        }
    }
    var zero T
    return zero, false
}

// Loading reports whether a Load is in flight.
func (l *List[T]) Loading() bool {
    l.mu.Lock()
    defer l.mu.Unlock()
    return l.loading
}
