package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/controller"
    "sendit-admin/internal/model"
    "sendit-admin/internal/view"
)

func (h *Handler) paymentsData(c echo.Context, errMsg, success string) view.PaymentsData {
    edit := h.Payments.Edit()
    return view.PaymentsData{
        Page:     view.Page{Title: "Payment", Authed: true, Error: errMsg, Success: success},
        Payments: h.Payments.Snapshot(),
        Editing:  edit.Mode == controller.ModeEditing,
        Draft:    edit.Draft,
    }
}

// PaymentsPage fetches the payment methods and renders the table.
func (h *Handler) PaymentsPage(c echo.Context) error {
    success, errMsg := flash(c, "Metode pembayaran")
    if err := h.Payments.Load(c.Request().Context(), apiToken(c)); err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        errMsg = "Failed to fetch payments"
    }
    return c.Render(http.StatusOK, "payments", h.paymentsData(c, errMsg, success))
}

// CreatePayment appends the backend's record on success; on failure the
// form keeps the submitted value.
func (h *Handler) CreatePayment(c echo.Context) error {
    draft := model.Payment{MetodePembayaran: c.FormValue("metode_pembayaran")}
    rec, err := h.Payments.Create(c.Request().Context(), apiToken(c), draft)
    if err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        h.Payments.BeginCreate(draft)
        return c.Render(http.StatusOK, "payments", h.paymentsData(c, "Gagal menambahkan metode pembayaran", ""))
    }
    h.publish(c, "payments", "create", rec.Key())
    return c.Redirect(http.StatusSeeOther, "/payment?msg=created")
}

// EditPaymentPage opens the edit form for one record.
func (h *Handler) EditPaymentPage(c echo.Context) error {
    id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
    if err := h.Payments.Load(c.Request().Context(), apiToken(c)); err != nil && rejected(err) {
        return h.forceLogout(c)
    }
    if err := h.Payments.BeginEdit(id); err != nil {
        return c.Redirect(http.StatusSeeOther, "/payment?err=notfound")
    }
    return c.Render(http.StatusOK, "payments", h.paymentsData(c, "", ""))
}

// UpdatePayment replaces the matched record on success and exits edit
// mode.
func (h *Handler) UpdatePayment(c echo.Context) error {
    id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
    draft := model.Payment{IDPayment: id, MetodePembayaran: c.FormValue("metode_pembayaran")}
    if _, err := h.Payments.Update(c.Request().Context(), apiToken(c), id, draft); err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        data := h.paymentsData(c, "Gagal memperbarui metode pembayaran", "")
        data.Editing = true
        data.Draft = draft
        return c.Render(http.StatusOK, "payments", data)
    }
    h.publish(c, "payments", "update", id)
    return c.Redirect(http.StatusSeeOther, "/payment?msg=updated")
}

// DeletePaymentPage renders the destructive-action confirmation.
func (h *Handler) DeletePaymentPage(c echo.Context) error {
    id := c.Param("id")
    return c.Render(http.StatusOK, "confirm_delete", view.ConfirmDeleteData{
        Page:   view.Page{Title: "Delete Payment", Authed: true},
        Label:  "payment method #" + id,
        Action: "/payment/" + id + "/delete",
        Back:   "/payment",
    })
}

// DeletePayment removes the record only when confirmed.
func (h *Handler) DeletePayment(c echo.Context) error {
    id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
    confirmed := c.FormValue("confirmed") == "1"
    if err := h.Payments.Delete(c.Request().Context(), apiToken(c), id, confirmed); err != nil {
        if err == controller.ErrNotConfirmed {
            return c.Redirect(http.StatusSeeOther, "/payment")
        }
        if rejected(err) {
            return h.forceLogout(c)
        }
        return c.Redirect(http.StatusSeeOther, "/payment?err=delete")
    }
    h.publish(c, "payments", "delete", id)
    return c.Redirect(http.StatusSeeOther, "/payment?msg=deleted")
}
