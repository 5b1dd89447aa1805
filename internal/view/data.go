package view

import "sendit-admin/internal/model"

// Page carries the fields every screen shares.  Error and Success are
// the per-screen messages; nothing propagates to a global handler.
type Page struct {
    Title   string
    Authed  bool
    Error   string
    Success string
}

// LoginData backs the login screen.
type LoginData struct {
    Page
    Email string
}

// RegisterForm holds the non-secret register inputs so the form can be
// re-rendered with the user's values after a validation failure.
type RegisterForm struct {
    Nama     string
    Alamat   string
    NoHP     string
    Email    string
    Username string
    Role     string
}

// RegisterData backs the register screen.  FieldErrors is keyed by wire
// field name and rendered inline next to each input.
type RegisterData struct {
    Page
    Form        RegisterForm
    FieldErrors map[string]string
}

// ForgotPasswordData backs the forgot-password screen.
type ForgotPasswordData struct {
    Page
    Email string
}

// ResetPasswordData backs the reset-password screen.  Token and Email
// arrive through the reset link's query string.
type ResetPasswordData struct {
    Page
    Token string
    Email string
}

// ChartPoint is one bar of the dashboard sales chart.
type ChartPoint struct {
    Name  string
    Sales float64
}

// DashboardData backs the dashboard screen.
type DashboardData struct {
    Page
    TotalUsers   int
    TotalOrders  int
    TotalRevenue float64
    Series       []ChartPoint
}

// UsersData backs the users screen.
type UsersData struct {
    Page
    Users   []model.User
    Editing bool
    Draft   model.User
    Roles   []string
}

// OrdersData backs the orders screen.
type OrdersData struct {
    Page
    Orders   []model.Order
    Editing  bool
    Draft    model.Order
    Statuses []string
}

// PaymentsData backs the payments screen.
type PaymentsData struct {
    Page
    Payments []model.Payment
    Editing  bool
    Draft    model.Payment
}

// ConfirmDeleteData backs the destructive-action confirmation screen.
// Action is the form target; Label describes the record being removed.
type ConfirmDeleteData struct {
    Page
    Label  string
    Action string
    Back   string
}

// TrackingData backs the public tracking lookup.  NotFound is distinct
// from Error: the former means the backend answered "no such resi", the
// latter that the lookup itself failed.
type TrackingData struct {
    Page
    Resi     string
    Found    bool
    NotFound bool
    Order    model.Order
    Sender   string
}
