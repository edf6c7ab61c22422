package model

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Account is a registered operator of the credit scoring service.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	LastSeen     time.Time
}

// Avatar returns the gravatar identicon URL of the given pixel size.
func (a *Account) Avatar(size int) string {
	digest := md5.Sum([]byte(strings.ToLower(a.Email)))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=%d", hex.EncodeToString(digest[:]), size)
}
