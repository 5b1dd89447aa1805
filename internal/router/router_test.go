package router

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/api"
    "sendit-admin/internal/config"
    "sendit-admin/internal/handler"
    "sendit-admin/internal/model"
    "sendit-admin/internal/queue"
    "sendit-admin/internal/session"
    "sendit-admin/internal/view"
)

// fakeBackend serves a fixed users list and counts delete calls.
type fakeBackend struct {
    deletes int
}

func (f *fakeBackend) handler() http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        switch {
        case r.Method == http.MethodGet && r.URL.Path == "/api/users":
            _ = json.NewEncoder(w).Encode([]model.User{
                {IDUser: 1, Nama: "Budi", Role: model.RolePemesan},
                {IDUser: 2, Nama: "Sari", Role: model.RoleKurir},
            })
        case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/users/"):
            f.deletes++
            w.WriteHeader(http.StatusNoContent)
        default:
            w.WriteHeader(http.StatusNotFound)
        }
    })
}

func newApp(t *testing.T, backendURL string) (*echo.Echo, session.Store, config.Config) {
    t.Helper()
    cfg := config.Config{
        Env:           "test",
        APIBaseURL:    backendURL,
        JWTSecret:     "test-secret",
        SessionCookie: "sendit_session",
    }
    store := session.NewMemoryStore()
    h := handler.New(cfg, api.New(backendURL), store, queue.NewPublisher(""))
    e := echo.New()
    r, err := view.NewRenderer()
    if err != nil {
        t.Fatalf("NewRenderer: %v", err)
    }
    e.Renderer = r
    RegisterRoutes(e, cfg, h, store)
    return e, store, cfg
}

func sessionCookie(t *testing.T, store session.Store, cfg config.Config) *http.Cookie {
    t.Helper()
    sid := session.NewSessionID()
    if err := store.Save(context.Background(), sid, "tok-123"); err != nil {
        t.Fatalf("Save: %v", err)
    }
    signed, err := session.SignSessionID(cfg.JWTSecret, sid)
    if err != nil {
        t.Fatalf("SignSessionID: %v", err)
    }
    return session.Cookie(cfg.SessionCookie, signed)
}

func TestProtectedPagesRedirectAnonymousVisitors(t *testing.T) {
    backend := httptest.NewServer((&fakeBackend{}).handler())
    defer backend.Close()
    e, _, _ := newApp(t, backend.URL)

    for _, path := range []string{"/dashboard", "/users", "/orders", "/payment"} {
        req := httptest.NewRequest(http.MethodGet, path, nil)
        rec := httptest.NewRecorder()
        e.ServeHTTP(rec, req)
        if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
            t.Errorf("%s: want redirect to /login, got %d %q", path, rec.Code, rec.Header().Get("Location"))
        }
    }
}

func TestUsersPageRendersBackendData(t *testing.T) {
    backend := httptest.NewServer((&fakeBackend{}).handler())
    defer backend.Close()
    e, store, cfg := newApp(t, backend.URL)

    req := httptest.NewRequest(http.MethodGet, "/users", nil)
    req.AddCookie(sessionCookie(t, store, cfg))
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    if rec.Code != http.StatusOK {
        t.Fatalf("want 200, got %d", rec.Code)
    }
    body := rec.Body.String()
    if !strings.Contains(body, "Budi") || !strings.Contains(body, "Sari") {
        t.Fatal("users table missing backend records")
    }
}

func TestDeleteConfirmationGate(t *testing.T) {
    f := &fakeBackend{}
    backend := httptest.NewServer(f.handler())
    defer backend.Close()
    e, store, cfg := newApp(t, backend.URL)
    ck := sessionCookie(t, store, cfg)

    // Load the collection first so there is something to delete.
    req := httptest.NewRequest(http.MethodGet, "/users", nil)
    req.AddCookie(ck)
    e.ServeHTTP(httptest.NewRecorder(), req)

    // Without the confirmation field: no backend call.
    req = httptest.NewRequest(http.MethodPost, "/users/1/delete", strings.NewReader(url.Values{}.Encode()))
    req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
    req.AddCookie(ck)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    if f.deletes != 0 {
        t.Fatalf("unconfirmed delete reached the backend: %d calls", f.deletes)
    }

    // With confirmation: exactly one backend call.
    form := url.Values{"confirmed": {"1"}}
    req = httptest.NewRequest(http.MethodPost, "/users/1/delete", strings.NewReader(form.Encode()))
    req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
    req.AddCookie(ck)
    rec = httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    if f.deletes != 1 {
        t.Fatalf("want exactly one backend delete call, got %d", f.deletes)
    }
    if rec.Code != http.StatusSeeOther || !strings.Contains(rec.Header().Get("Location"), "msg=deleted") {
        t.Fatalf("want redirect with deleted flash, got %d %q", rec.Code, rec.Header().Get("Location"))
    }
}
