package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/model"
    "sendit-admin/internal/view"
)

// Revenue sums total_harga over all orders.
func Revenue(orders []model.Order) float64 {
    var total float64
    for _, o := range orders {
        total += o.TotalHarga
    }
    return total
}

// CountByRole counts the users holding the given role.
func CountByRole(users []model.User, role string) int {
    n := 0
    for _, u := range users {
        if u.Role == role {
            n++
        }
    }
    return n
}

// SalesSeries projects the payments collection onto the chart points.
func SalesSeries(payments []model.Payment) []view.ChartPoint {
    series := make([]view.ChartPoint, 0, len(payments))
    for _, p := range payments {
        series = append(series, view.ChartPoint{Name: p.Month, Sales: p.Sales})
    }
    return series
}

// Dashboard fetches all three collections and renders the aggregates.
// The numbers are plain reductions over the snapshots, recomputed on
// every render; a failed fetch degrades that card to its previous data
// and shows one error message.
func (h *Handler) Dashboard(c echo.Context) error {
    ctx := c.Request().Context()
    token := apiToken(c)

    var errMsg string
    if err := h.Orders.Load(ctx, token); err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        errMsg = "Failed to fetch orders"
    }
    if err := h.Users.Load(ctx, token); err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        errMsg = "Failed to fetch users"
    }
    if err := h.Payments.Load(ctx, token); err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        errMsg = "Failed to fetch payments"
    }

    orders := h.Orders.Snapshot()
    return c.Render(http.StatusOK, "dashboard", view.DashboardData{
        Page:         view.Page{Title: "Dashboard", Authed: true, Error: errMsg},
        TotalUsers:   CountByRole(h.Users.Snapshot(), model.RolePemesan),
        TotalOrders:  len(orders),
        TotalRevenue: Revenue(orders),
        Series:       SalesSeries(h.Payments.Snapshot()),
    })
}
