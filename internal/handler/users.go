package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "sendit-admin/internal/controller"
    "sendit-admin/internal/model"
    "sendit-admin/internal/view"
)

var userRoles = []string{model.RolePemesan, model.RoleKurir, model.RoleAdmin}

// flash maps the msg/err query codes set by mutation redirects onto the
// messages shown above the table.
func flash(c echo.Context, label string) (success, errMsg string) {
    switch c.QueryParam("msg") {
    case "created":
        success = label + " berhasil ditambahkan"
    case "updated":
        success = label + " berhasil diperbarui"
    case "deleted":
        success = label + " berhasil dihapus"
    }
    switch c.QueryParam("err") {
    case "delete":
        errMsg = "Gagal menghapus " + label
    case "notfound":
        errMsg = label + " tidak ditemukan"
    }
    return success, errMsg
}

// usersData builds the users screen view model from the controller's
// current state.
func (h *Handler) usersData(c echo.Context, errMsg, success string) view.UsersData {
    edit := h.Users.Edit()
    return view.UsersData{
        Page:    view.Page{Title: "Users", Authed: true, Error: errMsg, Success: success},
        Users:   h.Users.Snapshot(),
        Editing: edit.Mode == controller.ModeEditing,
        Draft:   edit.Draft,
        Roles:   userRoles,
    }
}

// UsersPage fetches the users list and renders the table.  A failed
// fetch keeps whatever was on screen before and shows an error instead.
func (h *Handler) UsersPage(c echo.Context) error {
    success, errMsg := flash(c, "User")
    if err := h.Users.Load(c.Request().Context(), apiToken(c)); err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        errMsg = "Failed to fetch users"
    }
    return c.Render(http.StatusOK, "users", h.usersData(c, errMsg, success))
}

func userFromForm(c echo.Context) model.User {
    return model.User{
        Nama:     c.FormValue("nama"),
        Alamat:   c.FormValue("alamat"),
        NoHP:     c.FormValue("no_hp"),
        Email:    c.FormValue("email"),
        Username: c.FormValue("username"),
        Role:     c.FormValue("role"),
        Password: c.FormValue("password"),
    }
}

// CreateUser appends the backend's record on success; on failure the
// collection is untouched and the form keeps the submitted values.
func (h *Handler) CreateUser(c echo.Context) error {
    draft := userFromForm(c)
    rec, err := h.Users.Create(c.Request().Context(), apiToken(c), draft)
    if err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        h.Users.BeginCreate(draft)
        return c.Render(http.StatusOK, "users", h.usersData(c, "Gagal menambahkan user", ""))
    }
    h.publish(c, "users", "create", rec.Key())
    return c.Redirect(http.StatusSeeOther, "/users?msg=created")
}

// EditUserPage opens the edit form for one record.
func (h *Handler) EditUserPage(c echo.Context) error {
    id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
    if err := h.Users.Load(c.Request().Context(), apiToken(c)); err != nil && rejected(err) {
        return h.forceLogout(c)
    }
    if err := h.Users.BeginEdit(id); err != nil {
        return c.Redirect(http.StatusSeeOther, "/users?err=notfound")
    }
    return c.Render(http.StatusOK, "users", h.usersData(c, "", ""))
}

// UpdateUser replaces the matched record with the backend's response on
// success and exits edit mode; on failure the form stays open with the
// submitted values.
func (h *Handler) UpdateUser(c echo.Context) error {
    id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
    draft := userFromForm(c)
    draft.IDUser = id
    if _, err := h.Users.Update(c.Request().Context(), apiToken(c), id, draft); err != nil {
        if rejected(err) {
            return h.forceLogout(c)
        }
        data := h.usersData(c, "Gagal memperbarui user", "")
        data.Editing = true
        data.Draft = draft
        return c.Render(http.StatusOK, "users", data)
    }
    h.publish(c, "users", "update", id)
    return c.Redirect(http.StatusSeeOther, "/users?msg=updated")
}

// DeleteUserPage renders the destructive-action confirmation.
func (h *Handler) DeleteUserPage(c echo.Context) error {
    id := c.Param("id")
    return c.Render(http.StatusOK, "confirm_delete", view.ConfirmDeleteData{
        Page:   view.Page{Title: "Delete User", Authed: true},
        Label:  "user #" + id,
        Action: "/users/" + id + "/delete",
        Back:   "/users",
    })
}

// DeleteUser removes the record only when the confirmation field was
// submitted; without it no backend call is made.
func (h *Handler) DeleteUser(c echo.Context) error {
    id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
    confirmed := c.FormValue("confirmed") == "1"
    if err := h.Users.Delete(c.Request().Context(), apiToken(c), id, confirmed); err != nil {
        if err == controller.ErrNotConfirmed {
            return c.Redirect(http.StatusSeeOther, "/users")
        }
        if rejected(err) {
            return h.forceLogout(c)
        }
        return c.Redirect(http.StatusSeeOther, "/users?err=delete")
    }
    h.publish(c, "users", "delete", id)
    return c.Redirect(http.StatusSeeOther, "/users?msg=deleted")
}
