package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/server/http/dto"
	"github.com/polkiloo/creditscore/internal/server/http/middleware"
)

const (
	avatarSize       = 128
	msgSaved         = "Your changes have been saved."
	msgUsernameTaken = "Please use a different username."
)

// ProfileHandler serves profile pages.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler creates ProfileHandler instance.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Show handles GET /user/:username.
func (h *ProfileHandler) Show(c *gin.Context) {
	acc, err := h.facade.Profile(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			renderError(c, http.StatusNotFound, "User not found.")
			return
		}
		internalError(c, err)
		return
	}
	render(c, http.StatusOK, "user.html", gin.H{
		"Title":  acc.Username,
		"User":   acc,
		"Avatar": acc.Avatar(avatarSize),
	})
}

// EditPage handles GET /edit_profile.
func (h *ProfileHandler) EditPage(c *gin.Context) {
	acc := middleware.CurrentAccount(c)
	render(c, http.StatusOK, "edit_profile.html", gin.H{
		"Title": "Edit Profile",
		"Form":  dto.EditProfileForm{Username: acc.Username},
	})
}

// Edit handles POST /edit_profile.
func (h *ProfileHandler) Edit(c *gin.Context) {
	acc := middleware.CurrentAccount(c)

	var form dto.EditProfileForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "edit_profile.html", gin.H{"Title": "Edit Profile", "Form": form, "Errors": dto.Messages(err)})
		return
	}

	if err := h.facade.Rename(c.Request.Context(), acc.ID, form.Username); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			render(c, http.StatusConflict, "edit_profile.html", gin.H{"Title": "Edit Profile", "Form": form, "Errors": []string{msgUsernameTaken}})
		case errors.Is(err, domainErrors.ErrInvalidInput):
			render(c, http.StatusBadRequest, "edit_profile.html", gin.H{"Title": "Edit Profile", "Form": form, "Errors": []string{"Invalid username."}})
		default:
			internalError(c, err)
		}
		return
	}

	middleware.AddFlash(c, msgSaved)
	redirect(c, "/edit_profile")
}
