package model

// Order represents a delivery order (pemesanan) as served by the backend
// API.  Field names follow the wire format; the backend owns the schema
// and this struct only mirrors it.  IDPemesanan doubles as the tracking
// number (resi) used by the public lookup page.
//
// Fields:
//  IDPemesanan      – server-assigned order identifier / tracking number.
//  IDUser           – foreign key of the ordering user; resolved to a
//                     display name client-side by joining the users list.
//  IDKurir          – foreign key of the assigned courier.
//  Jarak            – delivery distance in kilometres.
//  LokasiJemput     – pickup location.
//  LokasiTujuan     – destination location.
//  Status           – one of "On Progress", "Completed", "Cancelled".
//  NamaPenerima     – recipient name.
//  NoHPPenerima     – recipient phone number.
//  JenisPaket       – package type.
//  Keterangan       – free-form notes.
//  NamaPengirim     – sender name.
//  NoHPPengirim     – sender phone number.
//  TotalHarga       – total price in rupiah.
//  MetodePembayaran – payment method label.
//  CreatedAt        – creation timestamp as sent by the backend.
type Order struct {
    IDPemesanan      int64   `json:"id_pemesanan" form:"id_pemesanan"`
    IDUser           int64   `json:"id_user" form:"id_user"`
    IDKurir          int64   `json:"id_kurir" form:"id_kurir"`
    Jarak            float64 `json:"jarak" form:"jarak"`
    LokasiJemput     string  `json:"lokasi_jemput" form:"lokasi_jemput"`
    LokasiTujuan     string  `json:"lokasi_tujuan" form:"lokasi_tujuan"`
    Status           string  `json:"status" form:"status"`
    NamaPenerima     string  `json:"nama_penerima" form:"nama_penerima"`
    NoHPPenerima     string  `json:"no_hp_penerima" form:"no_hp_penerima"`
    JenisPaket       string  `json:"jenis_paket" form:"jenis_paket"`
    Keterangan       string  `json:"keterangan" form:"keterangan"`
    NamaPengirim     string  `json:"nama_pengirim" form:"nama_pengirim"`
    NoHPPengirim     string  `json:"no_hp_pengirim" form:"no_hp_pengirim"`
    TotalHarga       float64 `json:"total_harga" form:"total_harga"`
    MetodePembayaran string  `json:"metode_pembayaran" form:"metode_pembayaran"`
    CreatedAt        string  `json:"created_at,omitempty" form:"-"`
}

// Order status values accepted by the backend.
const (
    StatusOnProgress = "On Progress"
    StatusCompleted  = "Completed"
    StatusCancelled  = "Cancelled"
)

// Key returns the collection identifier of the record.
func (o Order) Key() int64 { return o.IDPemesanan }
