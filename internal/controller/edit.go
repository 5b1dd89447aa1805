package controller

// EditMode tags the transient form state of a resource screen.  Creating
// and editing are mutually exclusive by construction: there is one
// EditState per controller and it holds exactly one mode.
type EditMode int

const (
    ModeIdle     EditMode = iota // no form open
    ModeCreating                 // the add-new form holds a draft
    ModeEditing                  // one record is open for editing
)

// EditState is the tagged variant {Idle | Creating(draft) | Editing(id,
// draft)}.  ID is meaningful only in editing mode; Draft in creating and
// editing modes.
type EditState[T Resource] struct {
    Mode  EditMode
    ID    int64
    Draft T
}

// BeginCreate opens the add-new form with the given draft, replacing any
// edit in progress.
func (l *List[T]) BeginCreate(draft T) {
    l.mu.Lock()
    defer l.mu.Unlock()
    l.edit = EditState[T]{Mode: ModeCreating, Draft: draft}
}

// BeginEdit snapshots the record with the given identifier into the edit
// draft, replacing any add-new in progress.  ErrNoEdit is returned when
// the identifier matches nothing.
func (l *List[T]) BeginEdit(id int64) error {
    l.mu.Lock()
    defer l.mu.Unlock()
    for i := range l.records {
        if l.records[i].Key() == id {
            l.edit = EditState[T]{Mode: ModeEditing, ID: id, Draft: l.records[i]}
            return nil
        }
    }
    return ErrNoEdit
}

// CancelEdit closes any open form without touching the collection.
func (l *List[T]) CancelEdit() {
    l.mu.Lock()
    defer l.mu.Unlock()
    l.edit = EditState[T]{}
}

// Edit returns the current form state.
func (l *List[T]) Edit() EditState[T] {
    l.mu.Lock()
    defer l.mu.Unlock()
    return l.edit
}
