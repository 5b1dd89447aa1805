package router // package router defines how HTTP routes are registered for the panel

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/config"
    "sendit-admin/internal/handler"
    "sendit-admin/internal/middleware"
    "sendit-admin/internal/session"
)

// RegisterRoutes wires every screen onto the Echo instance.  Routes fall
// into three groups: public pages (tracking, health), auth pages guarded
// against double login, and protected pages behind the session gate.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h *handler.Handler, store session.Store) {
    // Public pages.  The tracking lookup is deliberately outside the
    // session gate so customers can check a resi without an account.
    e.GET("/healthz", handler.Health)
    e.GET("/check-resi", h.CheckResi)

    // Auth pages redirect to the dashboard when a live session already
    // exists, so a logged-in admin cannot re-login by accident.
    authed := middleware.RedirectIfAuthenticated(cfg.JWTSecret, cfg.SessionCookie, store)
    e.GET("/login", h.LoginPage, authed)
    e.POST("/login", h.Login, authed)
    e.GET("/register", h.RegisterPage, authed)
    e.POST("/register", h.Register, authed)
    e.GET("/forgot-password", h.ForgotPasswordPage)
    e.POST("/forgot-password", h.ForgotPassword)
    e.GET("/reset-password", h.ResetPasswordPage)
    e.POST("/reset-password", h.ResetPassword)

    // The root route lands on the dashboard; the gate below bounces
    // anonymous visitors to /login from there.
    e.GET("/", func(c echo.Context) error {
        return c.Redirect(http.StatusSeeOther, "/dashboard")
    })

    // Protected pages.  Every route in this group goes through the
    // session gate, which redirects to /login when no live session is
    // presented.
    g := e.Group("", middleware.RequireSession(cfg.JWTSecret, cfg.SessionCookie, store))
    g.POST("/logout", h.Logout)
    g.GET("/dashboard", h.Dashboard)

    g.GET("/users", h.UsersPage)
    g.POST("/users", h.CreateUser)
    g.GET("/users/:id/edit", h.EditUserPage)
    g.POST("/users/:id", h.UpdateUser)
    g.GET("/users/:id/delete", h.DeleteUserPage)
    g.POST("/users/:id/delete", h.DeleteUser)

    g.GET("/orders", h.OrdersPage)
    g.POST("/orders", h.CreateOrder)
    g.GET("/orders/:id/edit", h.EditOrderPage)
    g.POST("/orders/:id", h.UpdateOrder)
    g.GET("/orders/:id/delete", h.DeleteOrderPage)
    g.POST("/orders/:id/delete", h.DeleteOrder)

    g.GET("/payment", h.PaymentsPage)
    g.POST("/payment", h.CreatePayment)
    g.GET("/payment/:id/edit", h.EditPaymentPage)
    g.POST("/payment/:id", h.UpdatePayment)
    g.GET("/payment/:id/delete", h.DeletePaymentPage)
    g.POST("/payment/:id/delete", h.DeletePayment)
}
