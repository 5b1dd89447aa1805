package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/api"
    "sendit-admin/internal/model"
    "sendit-admin/internal/view"
)

// senderPlaceholder is shown when the order references a user that does
// not exist in the users list.  A missing sender is not an error.
const senderPlaceholder = "Tidak diketahui"

// SenderName resolves an order's id_user against the users list.
func SenderName(users []model.User, idUser int64) string {
    for _, u := range users {
        if u.IDUser == idUser {
            return u.Nama
        }
    }
    return senderPlaceholder
}

// CheckResi is the public tracking lookup.  Without a resi parameter it
// just renders the search form.  With one, it fetches the single order
// and joins the sender name from the users list; a 404 renders the
// not-found state, anything else a network error, and neither touches
// any admin collection.
func (h *Handler) CheckResi(c echo.Context) error {
    resi := strings.TrimSpace(c.QueryParam("resi"))
    data := view.TrackingData{
        Page: view.Page{Title: "Check Resi"},
        Resi: resi,
    }
    if resi == "" {
        return c.Render(http.StatusOK, "check_resi", data)
    }

    order, err := h.API.GetOrder(c.Request().Context(), resi)
    if err != nil {
        if errors.Is(err, api.ErrNotFound) {
            data.NotFound = true
        } else {
            data.Error = "Network error. Please check your connection."
        }
        return c.Render(http.StatusOK, "check_resi", data)
    }

    // The sender join needs the users list; a failed fetch falls back
    // to the placeholder rather than failing the lookup.
    sender := senderPlaceholder
    if users, err := h.API.ListUsers(c.Request().Context(), ""); err == nil {
        sender = SenderName(users, order.IDUser)
    }

    data.Found = true
    data.Order = order
    data.Sender = sender
    return c.Render(http.StatusOK, "check_resi", data)
}
