package model

import "time"

// Session is an authenticated login together with its signed token.
type Session struct {
	Account    *Account
	Token      string
	TTL        time.Duration
	Persistent bool
}
