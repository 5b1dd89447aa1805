package session

import (
    "net/http"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
)

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
    return uuid.NewString()
}

// SignSessionID builds and signs an HS256 JWT whose subject is the
// session ID.  The token itself carries no expiry; the session ends when
// the store entry is deleted on logout, not by the clock.
func SignSessionID(secret, sid string) (string, error) {
    claims := jwt.MapClaims{
        "sub": sid,
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return t.SignedString([]byte(secret))
}

// ParseSessionID verifies the signed cookie value and returns the session
// ID it carries.  Any parse or signature failure yields ErrNoSession so
// callers treat a tampered cookie the same as a missing one.
func ParseSessionID(secret, raw string) (string, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrNoSession
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return "", ErrNoSession
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return "", ErrNoSession
    }
    sid, _ := claims["sub"].(string)
    if sid == "" {
        return "", ErrNoSession
    }
    return sid, nil
}

// Cookie builds the session cookie carrying the signed session ID.  No
// Max-Age is set: the cookie lives for the browser session while the
// server-side store is what actually decides whether a login is valid.
func Cookie(name, signed string) *http.Cookie {
    return &http.Cookie{
        Name:     name,
        Value:    signed,
        Path:     "/",
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    }
}

// ExpiredCookie builds a cookie that clears the session cookie in the
// browser on logout.
func ExpiredCookie(name string) *http.Cookie {
    return &http.Cookie{
        Name:     name,
        Value:    "",
        Path:     "/",
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
        MaxAge:   -1,
    }
}
