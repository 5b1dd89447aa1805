package model

// Payment represents a payment-method record as served by the backend API.
// Besides the method label the backend attaches per-month sales figures
// which feed the dashboard chart; they are read-only from the panel's
// point of view.
type Payment struct {
    IDPayment        int64   `json:"id_payment" form:"id_payment"`
    MetodePembayaran string  `json:"metode_pembayaran" form:"metode_pembayaran"`
    Month            string  `json:"month,omitempty" form:"-"`
    Sales            float64 `json:"sales,omitempty" form:"-"`
    Harga            float64 `json:"harga,omitempty" form:"-"`
}

// Key returns the collection identifier of the record.
func (p Payment) Key() int64 { return p.IDPayment }
