package models

import "time"

// Visit is a privacy-conscious page-view record: the IP is salted and
// hashed before it is stored, never kept raw.
type Visit struct {
	ID        uint
	HashedIP  string
	UserAgent string
	Path      string
	CreatedAt time.Time
}
