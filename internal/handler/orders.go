package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/controller"
    "sendit-admin/internal/model"
    "sendit-admin/internal/view"
)

var orderStatuses = []string{model.StatusOnProgress, model.StatusCompleted, model.StatusCancelled}

func (h *Handler) ordersData(c echo.Context, errMsg, success string) view.OrdersData {
    edit := h.Orders.Edit()
    draft := edit.Draft
    if edit.Mode == controller.ModeIdle && draft.Status == "" {
        draft.Status = model.StatusOnProgress
    }
    return view.OrdersData{
        Page:     view.Page{Title: "Orders", Authed: true, Error: errMsg, Success: success},
        Orders:   h.Orders.Snapshot(),
        Editing:  edit.Mode == controller.ModeEditing,
        Draft:    draft,
        Statuses: orderStatuses,
    }
}

// OrdersPage fetches the orders list and renders the table.
func (h *Handler) OrdersPage(c echo.Context) error {
    success, errMsg := flash(c, "Order")
    if err := h.Orders.Load(c.Request().Context(), apiToken(c)); err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        errMsg = "Failed to fetch orders"
    }
    return c.Render(http.StatusOK, "orders", h.ordersData(c, errMsg, success))
}

// orderFromForm builds an order draft from the submitted form.  Numeric
// fields parse forgivingly: an empty or malformed value becomes zero and
// the backend's validation decides what to reject.
func orderFromForm(c echo.Context) model.Order {
    atoi := func(name string) int64 {
        n, _ := strconv.ParseInt(c.FormValue(name), 10, 64)
        return n
    }
    atof := func(name string) float64 {
        f, _ := strconv.ParseFloat(c.FormValue(name), 64)
        return f
    }
    return model.Order{
        IDUser:           atoi("id_user"),
        IDKurir:          atoi("id_kurir"),
        Jarak:            atof("jarak"),
        LokasiJemput:     c.FormValue("lokasi_jemput"),
        LokasiTujuan:     c.FormValue("lokasi_tujuan"),
        Status:           c.FormValue("status"),
        NamaPenerima:     c.FormValue("nama_penerima"),
        NoHPPenerima:     c.FormValue("no_hp_penerima"),
        JenisPaket:       c.FormValue("jenis_paket"),
        Keterangan:       c.FormValue("keterangan"),
        NamaPengirim:     c.FormValue("nama_pengirim"),
        NoHPPengirim:     c.FormValue("no_hp_pengirim"),
        TotalHarga:       atof("total_harga"),
        MetodePembayaran: c.FormValue("metode_pembayaran"),
    }
}

// CreateOrder appends the backend's record on success; on failure the
// form keeps the submitted values.
func (h *Handler) CreateOrder(c echo.Context) error {
    draft := orderFromForm(c)
    rec, err := h.Orders.Create(c.Request().Context(), apiToken(c), draft)
    if err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        h.Orders.BeginCreate(draft)
        return c.Render(http.StatusOK, "orders", h.ordersData(c, "Gagal menambahkan order", ""))
    }
    h.publish(c, "orders", "create", rec.Key())
    return c.Redirect(http.StatusSeeOther, "/orders?msg=created")
}

// EditOrderPage opens the edit form for one record.
func (h *Handler) EditOrderPage(c echo.Context) error {
    id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
    if err := h.Orders.Load(c.Request().Context(), apiToken(c)); err != nil && rejected(err) {
        return h.forceLogout(c)
    }
    if err := h.Orders.BeginEdit(id); err != nil {
        return c.Redirect(http.StatusSeeOther, "/orders?err=notfound")
    }
    return c.Render(http.StatusOK, "orders", h.ordersData(c, "", ""))
}

// UpdateOrder replaces the matched record on success and exits edit
// mode; on failure the form stays open with the submitted values.
func (h *Handler) UpdateOrder(c echo.Context) error {
    id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
    draft := orderFromForm(c)
    draft.IDPemesanan = id
    if _, err := h.Orders.Update(c.Request().Context(), apiToken(c), id, draft); err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        data := h.ordersData(c, "Gagal memperbarui order", "")
        data.Editing = true
        data.Draft = draft
        return c.Render(http.StatusOK, "orders", data)
    }
    h.publish(c, "orders", "update", id)
    return c.Redirect(http.StatusSeeOther, "/orders?msg=updated")
}

// DeleteOrderPage renders the destructive-action confirmation.
func (h *Handler) DeleteOrderPage(c echo.Context) error {
    id := c.Param("id")
    return c.Render(http.StatusOK, "confirm_delete", view.ConfirmDeleteData{
        Page:   view.Page{Title: "Delete Order", Authed: true},
        Label:  "order #" + id,
        Action: "/orders/" + id + "/delete",
        Back:   "/orders",
    })
}

// DeleteOrder removes the record only when confirmed.
func (h *Handler) DeleteOrder(c echo.Context) error {
    id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
    confirmed := c.FormValue("confirmed") == "1"
    if err := h.Orders.Delete(c.Request().Context(), apiToken(c), id, confirmed); err != nil {
        if err == controller.ErrNotConfirmed {
            return c.Redirect(http.StatusSeeOther, "/orders")
        }
        if rejected(err) {
            return h.forceLogout(c)
        }
        return c.Redirect(http.StatusSeeOther, "/orders?err=delete")
    }
    h.publish(c, "orders", "delete", id)
    return c.Redirect(http.StatusSeeOther, "/orders?msg=deleted")
}
