package model

import "time"

// Session represents a signed-in wallet session. The account identifier is
// owned by the wallet connector; everything else only reads it.
type Session struct {
	AccountID string
	SignedIn  bool
	CreatedAt time.Time
}
