package middleware

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	flashCookieName = "creditscore_flash"
	flashContextKey = "flashes"
)

// AddFlash queues a one-time message shown on the next rendered page.
func AddFlash(c *gin.Context, message string) {
	pending := append(pendingFlashes(c), message)
	c.Set(flashContextKey, pending)
	writeFlashCookie(c, pending)
}

// Flashes returns and clears all queued messages.
func Flashes(c *gin.Context) []string {
	var messages []string
	fromCookie := false
	if raw, err := c.Cookie(flashCookieName); err == nil && raw != "" {
		fromCookie = true
		messages = append(messages, decodeFlashes(raw)...)
	}

	pending := pendingFlashes(c)
	messages = append(messages, pending...)
	if fromCookie || len(pending) > 0 {
		c.Set(flashContextKey, []string(nil))
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	}
	return messages
}

func pendingFlashes(c *gin.Context) []string {
	val, ok := c.Get(flashContextKey)
	if !ok {
		return nil
	}
	messages, _ := val.([]string)
	return messages
}

func writeFlashCookie(c *gin.Context, messages []string) {
	data, err := json.Marshal(messages)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, base64.RawURLEncoding.EncodeToString(data), 0, "/", "", false, true)
}

func decodeFlashes(raw string) []string {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil
	}
	return messages
}
