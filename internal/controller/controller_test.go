package controller

import (
    "context"
    "errors"
    "reflect"
    "testing"

    "sendit-admin/internal/model"
)

/* ============================================================
   FAKE BACKEND OPS
   ============================================================
*/

// fakeOps counts calls and serves canned responses so tests can assert
// both the collection state and the number of network calls made.
type fakeOps struct {
    listResp   []model.Order
    listErr    error
    createResp model.Order
    createErr  error
    updateResp model.Order
    updateErr  error
    deleteErr  error

    listCalls   int
    createCalls int
    updateCalls int
    deleteCalls int
}

func (f *fakeOps) ops() Ops[model.Order] {
    return Ops[model.Order]{
        List: func(ctx context.Context, token string) ([]model.Order, error) {
            f.listCalls++
            return f.listResp, f.listErr
        },
        Create: func(ctx context.Context, token string, draft model.Order) (model.Order, error) {
            f.createCalls++
            return f.createResp, f.createErr
        },
        Update: func(ctx context.Context, token string, id int64, draft model.Order) (model.Order, error) {
            f.updateCalls++
            return f.updateResp, f.updateErr
        },
        Delete: func(ctx context.Context, token string, id int64) error {
            f.deleteCalls++
            return f.deleteErr
        },
    }
}

func twoOrders() []model.Order {
    return []model.Order{
        {IDPemesanan: 1, Status: model.StatusOnProgress, TotalHarga: 100000},
        {IDPemesanan: 2, Status: model.StatusCompleted, TotalHarga: 150000},
    }
}

/* ============================================================
   LOAD
   ============================================================
*/

func TestLoadReplacesCollection(t *testing.T) {
    f := &fakeOps{listResp: twoOrders()}
    l := NewList(f.ops())

    if err := l.Load(context.Background(), "tok"); err != nil {
        t.Fatalf("Load: %v", err)
    }
    if got := l.Snapshot(); len(got) != 2 || got[0].IDPemesanan != 1 || got[1].IDPemesanan != 2 {
        t.Fatalf("unexpected collection: %+v", got)
    }
    if l.Loading() {
        t.Fatal("loading flag not cleared after success")
    }
}

func TestLoadFailureKeepsStaleCollection(t *testing.T) {
    f := &fakeOps{listResp: twoOrders()}
    l := NewList(f.ops())
    if err := l.Load(context.Background(), "tok"); err != nil {
        t.Fatalf("Load: %v", err)
    }

    f.listErr = errors.New("connection refused")
    err := l.Load(context.Background(), "tok")
    var fe *FetchError
    if !errors.As(err, &fe) {
        t.Fatalf("want *FetchError, got %v", err)
    }
    if got := l.Snapshot(); len(got) != 2 {
        t.Fatalf("stale collection lost on failed load: %+v", got)
    }
    if l.Loading() {
        t.Fatal("loading flag not cleared after failure")
    }
}

/* ============================================================
   CREATE
   ============================================================
*/

func TestCreateAppendsServerRecord(t *testing.T) {
    f := &fakeOps{listResp: twoOrders()}
    // The backend assigns the identifier; the draft has none.
    f.createResp = model.Order{IDPemesanan: 3, Status: model.StatusOnProgress}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")

    rec, err := l.Create(context.Background(), "tok", model.Order{Status: model.StatusOnProgress})
    if err != nil {
        t.Fatalf("Create: %v", err)
    }
    if rec.IDPemesanan != 3 {
        t.Fatalf("server-assigned id not returned: %+v", rec)
    }
    got := l.Snapshot()
    if len(got) != 3 || got[2].IDPemesanan != 3 {
        t.Fatalf("record not appended at the end: %+v", got)
    }

    // No duplication, no loss when the next load returns the same set.
    f.listResp = got
    _ = l.Load(context.Background(), "tok")
    if got := l.Snapshot(); len(got) != 3 {
        t.Fatalf("load after create changed cardinality: %+v", got)
    }
}

func TestCreateFailureLeavesCollectionUnchanged(t *testing.T) {
    f := &fakeOps{listResp: twoOrders(), createErr: errors.New("boom")}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")
    before := l.Snapshot()

    _, err := l.Create(context.Background(), "tok", model.Order{})
    var ce *CreateError
    if !errors.As(err, &ce) {
        t.Fatalf("want *CreateError, got %v", err)
    }
    if !reflect.DeepEqual(before, l.Snapshot()) {
        t.Fatal("collection changed on failed create")
    }
}

/* ============================================================
   UPDATE
   ============================================================
*/

func TestUpdateReplacesExactlyOneRecordInPlace(t *testing.T) {
    f := &fakeOps{listResp: twoOrders()}
    f.updateResp = model.Order{IDPemesanan: 1, Status: model.StatusCompleted, TotalHarga: 100000}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")
    before := l.Snapshot()

    if _, err := l.Update(context.Background(), "tok", 1, before[0]); err != nil {
        t.Fatalf("Update: %v", err)
    }
    got := l.Snapshot()
    if len(got) != 2 {
        t.Fatalf("cardinality changed: %+v", got)
    }
    // Order unchanged, first record replaced by the server response,
    // second byte-for-byte identical.
    if got[0].IDPemesanan != 1 || got[0].Status != model.StatusCompleted {
        t.Fatalf("matched record not replaced: %+v", got[0])
    }
    if !reflect.DeepEqual(got[1], before[1]) {
        t.Fatalf("unrelated record modified: %+v", got[1])
    }
}

func TestUpdateFailureKeepsCollectionAndEditMode(t *testing.T) {
    f := &fakeOps{listResp: twoOrders(), updateErr: errors.New("boom")}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")
    if err := l.BeginEdit(1); err != nil {
        t.Fatalf("BeginEdit: %v", err)
    }
    before := l.Snapshot()

    _, err := l.Update(context.Background(), "tok", 1, before[0])
    var ue *UpdateError
    if !errors.As(err, &ue) {
        t.Fatalf("want *UpdateError, got %v", err)
    }
    if !reflect.DeepEqual(before, l.Snapshot()) {
        t.Fatal("collection changed on failed update")
    }
    if l.Edit().Mode != ModeEditing {
        t.Fatal("edit mode closed on failed update")
    }
}

func TestUpdateSuccessExitsEditMode(t *testing.T) {
    f := &fakeOps{listResp: twoOrders()}
    f.updateResp = model.Order{IDPemesanan: 1, Status: model.StatusCancelled}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")
    _ = l.BeginEdit(1)

    if _, err := l.Update(context.Background(), "tok", 1, model.Order{IDPemesanan: 1}); err != nil {
        t.Fatalf("Update: %v", err)
    }
    if l.Edit().Mode != ModeIdle {
        t.Fatal("edit mode still open after successful update")
    }
}

/* ============================================================
   DELETE
   ============================================================
*/

func TestDeleteWithoutConfirmationMakesNoNetworkCall(t *testing.T) {
    f := &fakeOps{listResp: twoOrders()}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")

    err := l.Delete(context.Background(), "tok", 1, false)
    if err != ErrNotConfirmed {
        t.Fatalf("want ErrNotConfirmed, got %v", err)
    }
    if f.deleteCalls != 0 {
        t.Fatalf("network call made without confirmation: %d", f.deleteCalls)
    }
    if len(l.Snapshot()) != 2 {
        t.Fatal("collection changed without confirmation")
    }
}

func TestDeleteConfirmedRemovesExactlyOne(t *testing.T) {
    f := &fakeOps{listResp: twoOrders()}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")

    if err := l.Delete(context.Background(), "tok", 1, true); err != nil {
        t.Fatalf("Delete: %v", err)
    }
    if f.deleteCalls != 1 {
        t.Fatalf("want exactly one network call, got %d", f.deleteCalls)
    }
    got := l.Snapshot()
    if len(got) != 1 || got[0].IDPemesanan != 2 {
        t.Fatalf("unexpected collection after delete: %+v", got)
    }
}

func TestDeleteFailureLeavesCollectionUnchanged(t *testing.T) {
    f := &fakeOps{listResp: twoOrders(), deleteErr: errors.New("boom")}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")

    err := l.Delete(context.Background(), "tok", 1, true)
    var de *DeleteError
    if !errors.As(err, &de) {
        t.Fatalf("want *DeleteError, got %v", err)
    }
    if len(l.Snapshot()) != 2 {
        t.Fatal("collection changed on failed delete")
    }
}

/* ============================================================
   EDIT STATE
   ============================================================
*/

func TestEditStateMutualExclusion(t *testing.T) {
    f := &fakeOps{listResp: twoOrders()}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")

    l.BeginCreate(model.Order{Status: model.StatusOnProgress})
    if l.Edit().Mode != ModeCreating {
        t.Fatal("BeginCreate did not enter creating mode")
    }
    if err := l.BeginEdit(2); err != nil {
        t.Fatalf("BeginEdit: %v", err)
    }
    e := l.Edit()
    if e.Mode != ModeEditing || e.ID != 2 {
        t.Fatalf("editing did not replace creating: %+v", e)
    }
    l.CancelEdit()
    if l.Edit().Mode != ModeIdle {
        t.Fatal("CancelEdit did not reset state")
    }
}

func TestBeginEditUnknownID(t *testing.T) {
    f := &fakeOps{listResp: twoOrders()}
    l := NewList(f.ops())
    _ = l.Load(context.Background(), "tok")

    if err := l.BeginEdit(99); err != ErrNoEdit {
        t.Fatalf("want ErrNoEdit, got %v", err)
    }
}
