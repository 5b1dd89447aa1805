package middleware // middleware provides the session gate applied to panel routes

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/session"
)

// Context keys set by RequireSession for downstream handlers.
const (
    CtxSessionID = "session_id" // the session's random identifier
    CtxAPIToken  = "api_token"  // the backend API token for outbound calls
)

// resolve reads the session cookie, verifies its signature and looks the
// session up in the store.  It returns the session ID and API token, or
// an error when any step fails.  A missing cookie, a bad signature and a
// deleted store entry are all the same thing to the guard: not logged in.
func resolve(c echo.Context, secret, cookieName string, store session.Store) (sid, token string, err error) {
    ck, err := c.Cookie(cookieName)
    if err != nil {
        return "", "", session.ErrNoSession
    }
    sid, err = session.ParseSessionID(secret, ck.Value)
    if err != nil {
        return "", "", err
    }
    token, err = store.Token(c.Request().Context(), sid)
    if err != nil {
        return "", "", err
    }
    return sid, token, nil
}

// RequireSession returns an Echo middleware that gates protected views.
// Requests without a live session are redirected to the login page
// instead of rendering; requests with one get the session ID and API
// token injected into the context for handlers to use on outbound calls.
func RequireSession(secret, cookieName string, store session.Store) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            sid, token, err := resolve(c, secret, cookieName, store)
            if err != nil {
                return c.Redirect(http.StatusSeeOther, "/login")
            }
            c.Set(CtxSessionID, sid)
            c.Set(CtxAPIToken, token)
            return next(c)
        }
    }
}

// RedirectIfAuthenticated returns an Echo middleware for the login and
// register pages: a user who already holds a live session is sent to the
// dashboard instead of being shown the form again.
func RedirectIfAuthenticated(secret, cookieName string, store session.Store) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if _, _, err := resolve(c, secret, cookieName, store); err == nil {
                return c.Redirect(http.StatusSeeOther, "/dashboard")
            }
            return next(c)
        }
    }
}
