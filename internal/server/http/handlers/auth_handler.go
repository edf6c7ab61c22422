package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/server/http/dto"
	"github.com/polkiloo/creditscore/internal/server/http/middleware"
)

const (
	msgInvalidLogin = "Invalid username or password"
	msgRegistered   = "Congratulations, you are now a registered user!"
	msgTaken        = "Please use a different username or email address."
)

// AuthHandler processes registration, login and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if middleware.CurrentAccount(c) != nil {
		redirect(c, homePath)
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Sign In", "Form": dto.LoginForm{}})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	if middleware.CurrentAccount(c) != nil {
		redirect(c, homePath)
		return
	}

	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Title": "Sign In", "Form": form, "Errors": dto.Messages(err)})
		return
	}

	session, err := h.facade.Authenticate(c.Request.Context(), form.Username, form.Password, form.RememberMe)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			middleware.AddFlash(c, msgInvalidLogin)
			target := "/login"
			if next := c.Query("next"); next != "" && safeNext(next) == next {
				target += "?next=" + url.QueryEscape(next)
			}
			redirect(c, target)
			return
		}
		internalError(c, err)
		return
	}

	middleware.SetSessionCookie(c, session)
	redirect(c, safeNext(c.Query("next")))
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	redirect(c, homePath)
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if middleware.CurrentAccount(c) != nil {
		redirect(c, homePath)
		return
	}
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Register", "Form": dto.RegistrationForm{}})
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	if middleware.CurrentAccount(c) != nil {
		redirect(c, homePath)
		return
	}

	var form dto.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"Title": "Register", "Form": form, "Errors": dto.Messages(err)})
		return
	}

	if err := h.facade.Register(c.Request.Context(), form.Username, form.Email, form.Password); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			render(c, http.StatusConflict, "register.html", gin.H{"Title": "Register", "Form": form, "Errors": []string{msgTaken}})
		case errors.Is(err, domainErrors.ErrInvalidInput):
			render(c, http.StatusBadRequest, "register.html", gin.H{"Title": "Register", "Form": form, "Errors": []string{"Invalid registration details."}})
		default:
			internalError(c, err)
		}
		return
	}

	middleware.AddFlash(c, msgRegistered)
	redirect(c, "/login")
}
