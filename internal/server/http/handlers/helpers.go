package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/creditscore/internal/server/http/middleware"
)

const homePath = "/index"

// render executes a page template with the current account and pending flashes.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = middleware.CurrentAccount(c)
	data["Flashes"] = middleware.Flashes(c)
	c.HTML(status, name, data)
}

func renderError(c *gin.Context, status int, message string) {
	render(c, status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Heading": http.StatusText(status),
		"Message": message,
	})
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	renderError(c, http.StatusInternalServerError, "An unexpected error has occurred.")
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// safeNext accepts only local absolute paths as post-login targets.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return homePath
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return homePath
	}
	return next
}
