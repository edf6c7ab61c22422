package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/creditscore/internal/domain/model"
	pkgAuth "github.com/polkiloo/creditscore/internal/pkg/auth"
)

const (
	// AccountContextKey is a gin context key for the authenticated account.
	AccountContextKey = "account"
	sessionCookieName = "creditscore_session"
	loginPath         = "/login"
)

// SessionFacade resolves session tokens and records account activity.
type SessionFacade interface {
	CurrentAccount(ctx context.Context, token string) (*model.Account, error)
	Touch(ctx context.Context, accountID int64) error
}

// LoadSession puts the account of a valid session cookie into the gin context.
// Invalid or expired cookies are cleared and the request continues anonymously.
func LoadSession(facade SessionFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		acc, err := facade.CurrentAccount(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				ClearSessionCookie(c)
				c.Next()
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(AccountContextKey, acc)
		c.Next()
	}
}

// TouchLastSeen records activity of the current account before the handler runs.
func TouchLastSeen(facade SessionFacade, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if acc := CurrentAccount(c); acc != nil {
			if err := facade.Touch(c.Request.Context(), acc.ID); err != nil {
				logger.Warn("touch last seen failed",
					slog.Int64("account_id", acc.ID),
					slog.String("error", err.Error()),
				)
			}
		}
		c.Next()
	}
}

// LoginRequired redirects anonymous visitors to the login page.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentAccount(c) != nil {
			c.Next()
			return
		}
		target := loginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// CurrentAccount returns the authenticated account or nil.
func CurrentAccount(c *gin.Context) *model.Account {
	val, ok := c.Get(AccountContextKey)
	if !ok {
		return nil
	}
	acc, _ := val.(*model.Account)
	return acc
}

// SetSessionCookie writes the session cookie. Non-persistent sessions end with the browser.
func SetSessionCookie(c *gin.Context, session *model.Session) {
	maxAge := 0
	if session.Persistent {
		maxAge = int(session.TTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, session.Token, maxAge, "/", "", false, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
