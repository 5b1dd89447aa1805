// Package queue defines message payloads exchanged over the message broker.
package queue

// ActivityEvent is published after a successful mutation on one of the
// admin collections.  It contains enough information for downstream
// consumers to log or audit without calling the backend.
type ActivityEvent struct {
    Resource string `json:"resource"` // users | orders | payments
    Action   string `json:"action"`   // create | update | delete
    RecordID int64  `json:"record_id"`
    Session  string `json:"session"` // session ID of the acting admin
    At       string `json:"at"`      // RFC3339 timestamp
}
