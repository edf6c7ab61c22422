package auth

import "time"

// Strategy issues and verifies session tokens carrying an account identifier.
type Strategy interface {
	IssueToken(accountID int64, ttl time.Duration) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tune token issuing. TTL is used when IssueToken receives a non-positive ttl.
type Options struct {
	TTL time.Duration
}
