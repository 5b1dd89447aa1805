// Package handler implements the panel's screens.  Every handler owns
// its own error display: failures are converted to a message on the page
// that triggered them and never escape to a global error handler.
package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/api"
    "sendit-admin/internal/config"
    "sendit-admin/internal/controller"
    "sendit-admin/internal/middleware"
    "sendit-admin/internal/model"
    "sendit-admin/internal/queue"
    "sendit-admin/internal/session"
)

// Handler bundles dependencies for all screens.
type Handler struct {
    Cfg      config.Config
    API      *api.Client
    Sessions session.Store
    Events   *queue.Publisher
    Users    *controller.List[model.User]
    Orders   *controller.List[model.Order]
    Payments *controller.List[model.Payment]
}

// New wires a Handler with one controller per resource, each bound to
// the corresponding API client calls.
func New(cfg config.Config, client *api.Client, store session.Store, events *queue.Publisher) *Handler {
    return &Handler{
        Cfg:      cfg,
        API:      client,
        Sessions: store,
        Events:   events,
        Users: controller.NewList(controller.Ops[model.User]{
            List:   client.ListUsers,
            Create: client.CreateUser,
            Update: client.UpdateUser,
            Delete: client.DeleteUser,
        }),
        Orders: controller.NewList(controller.Ops[model.Order]{
            List:   client.ListOrders,
            Create: client.CreateOrder,
            Update: client.UpdateOrder,
            Delete: client.DeleteOrder,
        }),
        Payments: controller.NewList(controller.Ops[model.Payment]{
            List:   client.ListPayments,
            Create: client.CreatePayment,
            Update: client.UpdatePayment,
            Delete: client.DeletePayment,
        }),
    }
}

// apiToken returns the session's backend token set by the guard.
func apiToken(c echo.Context) string {
    t, _ := c.Get(middleware.CtxAPIToken).(string)
    return t
}

// sessionID returns the session ID set by the guard.
func sessionID(c echo.Context) string {
    s, _ := c.Get(middleware.CtxSessionID).(string)
    return s
}

// forceLogout destroys the current session and sends the user to the
// login screen.  Used when the backend rejects the stored token with a
// 401: the token is dead and keeping the session would only repeat the
// failure on every page.
func (h *Handler) forceLogout(c echo.Context) error {
    if sid := sessionID(c); sid != "" {
        _ = h.Sessions.Delete(c.Request().Context(), sid)
    }
    c.SetCookie(session.ExpiredCookie(h.Cfg.SessionCookie))
    return c.Redirect(http.StatusSeeOther, "/login")
}

// rejected reports whether err means the backend refused our token.
func rejected(err error) bool {
    return errors.Is(err, api.ErrUnauthorized)
}

// publish mirrors a successful mutation onto the activity queue.
func (h *Handler) publish(c echo.Context, resource, action string, id int64) {
    h.Events.Publish(c.Request().Context(), queue.ActivityEvent{
        Resource: resource,
        Action:   action,
        RecordID: id,
        Session:  sessionID(c),
    })
}
