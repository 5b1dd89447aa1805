package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "testing"

    "sendit-admin/internal/session"
)

func postForm(path string, values url.Values) *http.Request {
    req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
    req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
    return req
}

func TestLoginSuccessCreatesSessionAndRedirects(t *testing.T) {
    backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.URL.Path != "/api/auth" {
            t.Errorf("unexpected path: %s", r.URL.Path)
        }
        _ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
    }))
    defer backend.Close()
    h, e := newTestHandler(t, backend)

    req := postForm("/login", url.Values{"email": {"admin@sendit.id"}, "password": {"secret"}})
    rec := httptest.NewRecorder()
    if err := h.Login(e.NewContext(req, rec)); err != nil {
        t.Fatalf("Login: %v", err)
    }
    if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
        t.Fatalf("want redirect to /dashboard, got %d %q", rec.Code, rec.Header().Get("Location"))
    }

    // The cookie must refer to a stored session holding the API token.
    res := rec.Result()
    var signed string
    for _, ck := range res.Cookies() {
        if ck.Name == h.Cfg.SessionCookie {
            signed = ck.Value
        }
    }
    if signed == "" {
        t.Fatal("session cookie not set")
    }
    sid, err := session.ParseSessionID(h.Cfg.JWTSecret, signed)
    if err != nil {
        t.Fatalf("ParseSessionID: %v", err)
    }
    tok, err := h.Sessions.Token(context.Background(), sid)
    if err != nil || tok != "tok-123" {
        t.Fatalf("stored token: got %q, %v", tok, err)
    }
}

func TestLoginInvalidCredentialsMessage(t *testing.T) {
    backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusUnprocessableEntity)
    }))
    defer backend.Close()
    h, e := newTestHandler(t, backend)

    req := postForm("/login", url.Values{"email": {"admin@sendit.id"}, "password": {"wrong"}})
    rec := httptest.NewRecorder()
    if err := h.Login(e.NewContext(req, rec)); err != nil {
        t.Fatalf("Login: %v", err)
    }
    if !strings.Contains(rec.Body.String(), "Invalid credentials") {
        t.Fatal("invalid-credentials message missing")
    }
}

func TestLoginRateLimitedMessage(t *testing.T) {
    backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusTooManyRequests)
    }))
    defer backend.Close()
    h, e := newTestHandler(t, backend)

    req := postForm("/login", url.Values{"email": {"admin@sendit.id"}, "password": {"secret"}})
    rec := httptest.NewRecorder()
    if err := h.Login(e.NewContext(req, rec)); err != nil {
        t.Fatalf("Login: %v", err)
    }
    if !strings.Contains(rec.Body.String(), "Too many login attempts") {
        t.Fatal("rate-limit message missing")
    }
}

func TestLogoutDeletesSession(t *testing.T) {
    backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
    defer backend.Close()
    h, e := newTestHandler(t, backend)

    sid := session.NewSessionID()
    _ = h.Sessions.Save(context.Background(), sid, "tok-123")

    req := postForm("/logout", url.Values{})
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.Set("session_id", sid)
    if err := h.Logout(c); err != nil {
        t.Fatalf("Logout: %v", err)
    }
    if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
        t.Fatalf("want redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
    }
    if _, err := h.Sessions.Token(context.Background(), sid); err != session.ErrNoSession {
        t.Fatalf("session not deleted: %v", err)
    }
}
