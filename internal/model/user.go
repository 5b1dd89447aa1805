package model

// User represents an account record as served by the backend API.  The
// password fields are write-only: they are sent on create/update and never
// echoed back by the backend, hence omitempty.
type User struct {
    IDUser   int64  `json:"id_user" form:"id_user"`
    Nama     string `json:"nama" form:"nama"`
    Alamat   string `json:"alamat" form:"alamat"`
    NoHP     string `json:"no_hp" form:"no_hp"`
    Email    string `json:"email" form:"email"`
    Username string `json:"username" form:"username"`
    Role     string `json:"role" form:"role"`
    Password string `json:"password,omitempty" form:"password"`
}

// Role values accepted by the backend.
const (
    RolePemesan = "pemesan"
    RoleKurir   = "kurir"
    RoleAdmin   = "admin"
)

// Key returns the collection identifier of the record.
func (u User) Key() int64 { return u.IDUser }
