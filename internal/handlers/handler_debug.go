package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/edinstair/property_transition_app/internal/core/ports/services"
	"github.com/edinstair/property_transition_app/internal/dto"
)

// debugHandler exposes raw read-only queries against the remote
// ledger for operator troubleshooting.
type debugHandler struct {
	debugService portssvc.DebugQuerySvc
}

// registerDebugRoutes registers the debug pass-through routes.
func registerDebugRoutes(rg *gin.RouterGroup, debugService portssvc.DebugQuerySvc) {
	h := &debugHandler{debugService: debugService}

	debug := rg.Group("/debug")
	{
		debug.GET("/contacts", h.searchContacts)
		debug.GET("/invoices", h.searchInvoices)
	}
}

// searchContacts godoc
// @Summary Raw contact search
// @Description Free-text search against the remote system's contacts
// @Tags debug
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} dto.ContactResponse
// @Failure 400 {object} map[string]string "Empty query"
// @Security BearerAuth
// @Router /debug/contacts [get]
func (h *debugHandler) searchContacts(c *gin.Context) {
	contacts, err := h.debugService.SearchContacts(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListContactResponse(contacts))
}

// searchInvoices godoc
// @Summary Raw invoice search
// @Description Lists a contact's invoices, optionally from an issue date onwards
// @Tags debug
// @Produce json
// @Param contactID query string true "Contact ID"
// @Param since query string false "Earliest issue date, YYYY-MM-DD"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Missing contact ID or bad date"
// @Security BearerAuth
// @Router /debug/invoices [get]
func (h *debugHandler) searchInvoices(c *gin.Context) {
	var since time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be YYYY-MM-DD"})
			return
		}
		since = parsed
	}

	invoices, err := h.debugService.SearchInvoices(c.Request.Context(), c.Query("contactID"), since)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}
