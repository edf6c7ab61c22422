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

const msgCustomerNotFound = "Customer ID not found."

// ReportHandler serves customer credit reports.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler creates ReportHandler instance.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// FormPage handles GET /report_form.
func (h *ReportHandler) FormPage(c *gin.Context) {
	render(c, http.StatusOK, "report_form.html", gin.H{"Title": "Credit Report", "CustomerID": ""})
}

// SubmitForm handles POST /report_form by redirecting to the report.
func (h *ReportHandler) SubmitForm(c *gin.Context) {
	var form dto.ReportForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "report_form.html", gin.H{"Title": "Credit Report", "CustomerID": form.CustomerID, "Errors": dto.Messages(err)})
		return
	}
	redirect(c, "/report?customer_id="+url.QueryEscape(form.CustomerID))
}

// Show handles GET and POST /report.
func (h *ReportHandler) Show(c *gin.Context) {
	customerID := c.Query("customer_id")
	if c.Request.Method == http.MethodPost {
		customerID = c.PostForm("customer_id")
	}
	if c.Request.Method == http.MethodGet && customerID == "" {
		h.FormPage(c)
		return
	}

	report, err := h.facade.Report(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			middleware.AddFlash(c, msgCustomerNotFound)
			render(c, http.StatusNotFound, "report_form.html", gin.H{"Title": "Credit Report", "CustomerID": customerID})
			return
		}
		internalError(c, err)
		return
	}

	render(c, http.StatusOK, "report.html", gin.H{
		"Title":    "Credit Report",
		"Customer": report.Customer,
		"Records":  report.Records,
		"Chart":    report.Chart(),
	})
}
