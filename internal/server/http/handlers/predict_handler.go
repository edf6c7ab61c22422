package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PredictHandler serves the scoring form and its results.
type PredictHandler struct {
	facade PredictFacade
}

// NewPredictHandler creates PredictHandler instance.
func NewPredictHandler(facade PredictFacade) *PredictHandler {
	return &PredictHandler{facade: facade}
}

// FormPage handles GET /predict.
func (h *PredictHandler) FormPage(c *gin.Context) {
	form, err := h.facade.PredictionForm(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	render(c, http.StatusOK, "predict.html", gin.H{"Title": "Predict", "Form": form})
}

// Predict handles POST /predict.
func (h *PredictHandler) Predict(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		renderError(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	result, err := h.facade.Predict(c.Request.Context(), c.Request.PostForm)
	if err != nil {
		internalError(c, err)
		return
	}

	render(c, http.StatusOK, "result.html", gin.H{
		"Title":          "Prediction",
		"PredictionText": result.Prediction.Text,
		"Insights":       result.Prediction.Insights,
		"Numerical":      result.Numerical,
	})
}
