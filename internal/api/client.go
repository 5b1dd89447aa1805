package api

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strconv"

    "sendit-admin/internal/model"
)

// Endpoint paths on the backend, relative to the base URL.  These mirror
// the backend's routing; the panel never constructs paths anywhere else.
const (
    pathLogin          = "/api/auth"
    pathRegister       = "/api/register"
    pathForgotPassword = "/api/forgot-password"
    pathResetPassword  = "/api/password-reset"
    pathOrders         = "/api/pemesanan"
    pathUsers          = "/api/users"
    pathPayments       = "/api/payments"
)

// Client is the outbound REST client for the Sendit backend.  All panel
// data lives behind this client; it performs no retries and no caching.
// A zero HTTPClient falls back to http.DefaultClient, which also means
// whatever transport timeout the default client carries.
type Client struct {
    BaseURL    string
    HTTPClient *http.Client
}

// New returns a Client bound to the given base URL.
func New(baseURL string) *Client {
    return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

// do performs one JSON round-trip.  The request body is marshalled when
// non-nil, the bearer token attached when non-empty, and a 2xx response
// decoded into out when out is non-nil.  Non-2xx responses are decoded
// for an error message and field map, then converted through
// statusError.  Transport failures are wrapped so callers can
// distinguish them from backend rejections with errors.As/Is.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
    var rd io.Reader
    if body != nil {
        b, err := json.Marshal(body)
        if err != nil {
            return fmt.Errorf("encode request: %w", err)
        }
        rd = bytes.NewReader(b)
    }
    req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
    if err != nil {
        return fmt.Errorf("build request: %w", err)
    }
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }

    httpc := c.HTTPClient
    if httpc == nil {
        httpc = http.DefaultClient
    }
    resp, err := httpc.Do(req)
    if err != nil {
        return fmt.Errorf("%s %s: %w", method, path, err)
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        msg, fields := decodeErrorBody(resp.Body)
        return statusError(resp.StatusCode, msg, fields)
    }
    if out == nil {
        return nil
    }
    if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
        return fmt.Errorf("decode response: %w", err)
    }
    return nil
}

// decodeErrorBody extracts a human message and field-level validation
// messages from an error response.  The backend sends either
// {"error": "..."} or a flat {field: [messages]} validation map; both
// shapes are handled and an unreadable body yields empty results.
func decodeErrorBody(r io.Reader) (msg string, fields map[string]string) {
    var raw map[string]json.RawMessage
    if err := json.NewDecoder(r).Decode(&raw); err != nil {
        return "", nil
    }
    for k, v := range raw {
        var s string
        if err := json.Unmarshal(v, &s); err == nil {
            if k == "error" || k == "message" {
                msg = s
            } else {
                if fields == nil {
                    fields = map[string]string{}
                }
                fields[k] = s
            }
            continue
        }
        var list []string
        if err := json.Unmarshal(v, &list); err == nil && len(list) > 0 {
            if fields == nil {
                fields = map[string]string{}
            }
            fields[k] = list[0]
        }
    }
    return msg, fields
}

// ----- auth -----

type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}
type loginResp struct {
    Token string `json:"token"`
}

// RegisterReq is the payload for the register endpoint.  Role defaults to
// admin on the registration screen; the backend validates everything.
type RegisterReq struct {
    Nama                 string `json:"nama"`
    Alamat               string `json:"alamat"`
    NoHP                 string `json:"no_hp"`
    Email                string `json:"email"`
    Username             string `json:"username"`
    Password             string `json:"password"`
    PasswordConfirmation string `json:"password_confirmation"`
    Role                 string `json:"role"`
}

// ResetPasswordReq is the payload for the password-reset endpoint.  Token
// and email arrive via the reset link's query string.
type ResetPasswordReq struct {
    Token                string `json:"token"`
    Email                string `json:"email"`
    Password             string `json:"password"`
    PasswordConfirmation string `json:"password_confirmation"`
}

// Login exchanges credentials for an API token.  422 maps to
// ErrInvalidCredentials and 429 to ErrRateLimited.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
    var out loginResp
    if err := c.do(ctx, http.MethodPost, pathLogin, "", loginReq{Email: email, Password: password}, &out); err != nil {
        return "", err
    }
    return out.Token, nil
}

// Register creates a new account.  422 maps to *ValidationError with
// field-level messages for the form.
func (c *Client) Register(ctx context.Context, req RegisterReq) error {
    return c.do(ctx, http.MethodPost, pathRegister, "", req, nil)
}

// ForgotPassword requests a reset link for the given email.  404 maps to
// ErrNotFound (no account) and 429 to ErrRateLimited.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
    return c.do(ctx, http.MethodPost, pathForgotPassword, "", map[string]string{"email": email}, nil)
}

// ResetPassword completes a password reset.  400 maps to ErrBadToken.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordReq) error {
    return c.do(ctx, http.MethodPost, pathResetPassword, "", req, nil)
}

// ----- orders -----

// ListOrders fetches the full orders collection.
func (c *Client) ListOrders(ctx context.Context, token string) ([]model.Order, error) {
    var out []model.Order
    if err := c.do(ctx, http.MethodGet, pathOrders, token, nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// GetOrder fetches a single order by tracking number (resi).  This is the
// one unauthenticated read; 404 maps to ErrNotFound.
func (c *Client) GetOrder(ctx context.Context, resi string) (model.Order, error) {
    var out model.Order
    if err := c.do(ctx, http.MethodGet, pathOrders+"/"+resi, "", nil, &out); err != nil {
        return model.Order{}, err
    }
    return out, nil
}

// CreateOrder submits a draft order and returns the server's record,
// including the server-assigned identifier.
func (c *Client) CreateOrder(ctx context.Context, token string, draft model.Order) (model.Order, error) {
    var out model.Order
    if err := c.do(ctx, http.MethodPost, pathOrders, token, draft, &out); err != nil {
        return model.Order{}, err
    }
    return out, nil
}

// UpdateOrder submits the full draft for an existing order and returns
// the server's record.
func (c *Client) UpdateOrder(ctx context.Context, token string, id int64, draft model.Order) (model.Order, error) {
    var out model.Order
    if err := c.do(ctx, http.MethodPut, pathOrders+"/"+strconv.FormatInt(id, 10), token, draft, &out); err != nil {
        return model.Order{}, err
    }
    return out, nil
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, token string, id int64) error {
    return c.do(ctx, http.MethodDelete, pathOrders+"/"+strconv.FormatInt(id, 10), token, nil, nil)
}

// ----- users -----

// ListUsers fetches the full users collection.
func (c *Client) ListUsers(ctx context.Context, token string) ([]model.User, error) {
    var out []model.User
    if err := c.do(ctx, http.MethodGet, pathUsers, token, nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// CreateUser submits a draft user and returns the server's record.
func (c *Client) CreateUser(ctx context.Context, token string, draft model.User) (model.User, error) {
    var out model.User
    if err := c.do(ctx, http.MethodPost, pathUsers, token, draft, &out); err != nil {
        return model.User{}, err
    }
    return out, nil
}

// UpdateUser submits the full draft for an existing user and returns the
// server's record.
func (c *Client) UpdateUser(ctx context.Context, token string, id int64, draft model.User) (model.User, error) {
    var out model.User
    if err := c.do(ctx, http.MethodPut, pathUsers+"/"+strconv.FormatInt(id, 10), token, draft, &out); err != nil {
        return model.User{}, err
    }
    return out, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
    return c.do(ctx, http.MethodDelete, pathUsers+"/"+strconv.FormatInt(id, 10), token, nil, nil)
}

// ----- payments -----

// ListPayments fetches the full payment-methods collection.
func (c *Client) ListPayments(ctx context.Context, token string) ([]model.Payment, error) {
    var out []model.Payment
    if err := c.do(ctx, http.MethodGet, pathPayments, token, nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// CreatePayment submits a draft payment method and returns the server's
// record.
func (c *Client) CreatePayment(ctx context.Context, token string, draft model.Payment) (model.Payment, error) {
    var out model.Payment
    if err := c.do(ctx, http.MethodPost, pathPayments, token, draft, &out); err != nil {
        return model.Payment{}, err
    }
    return out, nil
}

// UpdatePayment submits the full draft for an existing payment method and
// returns the server's record.
func (c *Client) UpdatePayment(ctx context.Context, token string, id int64, draft model.Payment) (model.Payment, error) {
    var out model.Payment
    if err := c.do(ctx, http.MethodPut, pathPayments+"/"+strconv.FormatInt(id, 10), token, draft, &out); err != nil {
        return model.Payment{}, err
    }
    return out, nil
}

// DeletePayment removes a payment method.
func (c *Client) DeletePayment(ctx context.Context, token string, id int64) error {
    return c.do(ctx, http.MethodDelete, pathPayments+"/"+strconv.FormatInt(id, 10), token, nil, nil)
}
