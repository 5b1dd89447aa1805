package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/api"
    "sendit-admin/internal/model"
    "sendit-admin/internal/session"
    "sendit-admin/internal/view"
)

// LoginPage renders the login form.
func (h *Handler) LoginPage(c echo.Context) error {
    return c.Render(http.StatusOK, "login", view.LoginData{
        Page: view.Page{Title: "Login"},
    })
}

// Login exchanges the submitted credentials for a backend token, creates
// a session around it and redirects to the dashboard.  The message
// mapping mirrors the backend's contract: 422 is bad credentials, 429 a
// rate limit, anything else a connectivity problem.
func (h *Handler) Login(c echo.Context) error {
    email := c.FormValue("email")
    password := c.FormValue("password")

    fail := func(msg string) error {
        return c.Render(http.StatusOK, "login", view.LoginData{
            Page:  view.Page{Title: "Login", Error: msg},
            Email: email,
        })
    }
    if email == "" || password == "" {
        return fail("Email and password are required.")
    }

    token, err := h.API.Login(c.Request().Context(), email, password)
    if err != nil {
        switch {
        case errors.Is(err, api.ErrInvalidCredentials):
            return fail("Invalid credentials. Please check your email and password.")
        case errors.Is(err, api.ErrRateLimited):
            return fail("Too many login attempts. Please try again later.")
        default:
            return fail("Network error. Please check your connection.")
        }
    }

    sid := session.NewSessionID()
    if err := h.Sessions.Save(c.Request().Context(), sid, token); err != nil {
        return fail("Could not start a session. Please try again.")
    }
    signed, err := session.SignSessionID(h.Cfg.JWTSecret, sid)
    if err != nil {
        _ = h.Sessions.Delete(c.Request().Context(), sid)
        return fail("Could not start a session. Please try again.")
    }
    c.SetCookie(session.Cookie(h.Cfg.SessionCookie, signed))
    return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout deletes the session and clears the cookie.
func (h *Handler) Logout(c echo.Context) error {
    return h.forceLogout(c)
}

// RegisterPage renders the registration form.  Role defaults to admin:
// this panel registers back-office accounts, not customers.
func (h *Handler) RegisterPage(c echo.Context) error {
    return c.Render(http.StatusOK, "register", view.RegisterData{
        Page: view.Page{Title: "Register"},
        Form: view.RegisterForm{Role: model.RoleAdmin},
    })
}

// Register submits the account to the backend.  A 422 re-renders the
// form with the backend's field messages inline and the user's values
// kept; success redirects to login.
func (h *Handler) Register(c echo.Context) error {
    form := view.RegisterForm{
        Nama:     c.FormValue("nama"),
        Alamat:   c.FormValue("alamat"),
        NoHP:     c.FormValue("no_hp"),
        Email:    c.FormValue("email"),
        Username: c.FormValue("username"),
        Role:     c.FormValue("role"),
    }
    if form.Role == "" {
        form.Role = model.RoleAdmin
    }

    err := h.API.Register(c.Request().Context(), api.RegisterReq{
        Nama:                 form.Nama,
        Alamat:               form.Alamat,
        NoHP:                 form.NoHP,
        Email:                form.Email,
        Username:             form.Username,
        Password:             c.FormValue("password"),
        PasswordConfirmation: c.FormValue("password_confirmation"),
        Role:                 form.Role,
    })
    if err != nil {
        data := view.RegisterData{
            Page: view.Page{Title: "Register"},
            Form: form,
        }
        var verr *api.ValidationError
        if errors.As(err, &verr) {
            data.FieldErrors = verr.Fields
            data.Error = "Please fix the highlighted fields."
        } else {
            data.Error = "Registration failed. Please try again."
        }
        return c.Render(http.StatusOK, "register", data)
    }
    return c.Redirect(http.StatusSeeOther, "/login")
}

// ForgotPasswordPage renders the forgot-password form.
func (h *Handler) ForgotPasswordPage(c echo.Context) error {
    return c.Render(http.StatusOK, "forgot_password", view.ForgotPasswordData{
        Page: view.Page{Title: "Forgot Password"},
    })
}

// ForgotPassword asks the backend to mail a reset link.  404 means no
// account with that email; 429 a rate limit.
func (h *Handler) ForgotPassword(c echo.Context) error {
    email := c.FormValue("email")
    data := view.ForgotPasswordData{
        Page:  view.Page{Title: "Forgot Password"},
        Email: email,
    }
    err := h.API.ForgotPassword(c.Request().Context(), email)
    switch {
    case err == nil:
        data.Success = "A reset link has been sent to your email."
        data.Email = ""
    case errors.Is(err, api.ErrNotFound):
        data.Error = "No account found with this email address."
    case errors.Is(err, api.ErrRateLimited):
        data.Error = "Too many requests. Please try again later."
    default:
        data.Error = "Something went wrong. Please try again."
    }
    return c.Render(http.StatusOK, "forgot_password", data)
}

// ResetPasswordPage renders the reset form.  Token and email come from
// the reset link's query string.
func (h *Handler) ResetPasswordPage(c echo.Context) error {
    return c.Render(http.StatusOK, "reset_password", view.ResetPasswordData{
        Page:  view.Page{Title: "Reset Password"},
        Token: c.QueryParam("token"),
        Email: c.QueryParam("email"),
    })
}

// ResetPassword completes the reset.  400 means the token is invalid or
// expired.
func (h *Handler) ResetPassword(c echo.Context) error {
    req := api.ResetPasswordReq{
        Token:                c.FormValue("token"),
        Email:                c.FormValue("email"),
        Password:             c.FormValue("password"),
        PasswordConfirmation: c.FormValue("password_confirmation"),
    }
    data := view.ResetPasswordData{
        Page:  view.Page{Title: "Reset Password"},
        Token: req.Token,
        Email: req.Email,
    }
    err := h.API.ResetPassword(c.Request().Context(), req)
    switch {
    case err == nil:
        data.Success = "Password has been reset. You can now log in."
    case errors.Is(err, api.ErrBadToken):
        data.Error = "Invalid or expired reset token. Please request a new password reset link."
    default:
        data.Error = "Something went wrong. Please try again."
    }
    return c.Render(http.StatusOK, "reset_password", data)
}
