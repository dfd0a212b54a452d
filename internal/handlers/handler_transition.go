package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edinstair/property_transition_app/internal/core/domain"
	portssvc "github.com/edinstair/property_transition_app/internal/core/ports/services"
	"github.com/edinstair/property_transition_app/internal/dto"
	"github.com/edinstair/property_transition_app/internal/middleware"
)

// transitionHandler drives occupier transition runs over HTTP.
type transitionHandler struct {
	workflow portssvc.TransitionWorkflowSvc
	contacts portssvc.ContactTransitionSvc
}

// registerTransitionRoutes registers the workflow routes.
func registerTransitionRoutes(rg *gin.RouterGroup, workflow portssvc.TransitionWorkflowSvc, contacts portssvc.ContactTransitionSvc) {
	h := &transitionHandler{workflow: workflow, contacts: contacts}

	transitions := rg.Group("/transitions")
	{
		transitions.POST("", h.startTransition)
		transitions.GET("/:runID", h.getTransition)
		transitions.POST("/:runID/contact", h.createContact)
		transitions.GET("/:runID/next-account", h.nextAvailableAccount)
		transitions.POST("/:runID/invoices", h.reassignInvoices)
		transitions.POST("/:runID/invoices/skip", h.skipInvoices)
		transitions.POST("/:runID/template", h.transferTemplate)
		transitions.POST("/:runID/template/skip", h.skipTemplate)
		transitions.POST("/:runID/previous", h.resolvePrevious)
		transitions.POST("/:runID/split", h.splitInvoice)
		transitions.POST("/:runID/abandon", h.abandonTransition)
	}
}

// startTransition godoc
// @Summary Start a transition run
// @Description Locates the outgoing contact by account number or property base and opens a workflow run
// @Tags transitions
// @Accept json
// @Produce json
// @Param request body dto.StartTransitionRequest true "Search parameters"
// @Success 201 {object} dto.TransitionStateResponse
// @Failure 400 {object} map[string]string "Invalid account number or date"
// @Failure 404 {object} map[string]string "No contact found"
// @Security BearerAuth
// @Router /transitions [post]
func (h *transitionHandler) startTransition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StartTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for startTransition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": middleware.FormatBindingError(err)})
		return
	}

	operator, _ := middleware.GetOperatorFromContext(c)
	run, err := h.workflow.Start(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransitionStateResponse(run))
}

// getTransition godoc
// @Summary Get a transition run
// @Tags transitions
// @Produce json
// @Param runID path string true "Run ID"
// @Success 200 {object} dto.TransitionStateResponse
// @Failure 404 {object} map[string]string "Unknown run"
// @Security BearerAuth
// @Router /transitions/{runID} [get]
func (h *transitionHandler) getTransition(c *gin.Context) {
	run, err := h.workflow.Get(c.Request.Context(), c.Param("runID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionStateResponse(run))
}

// createContact godoc
// @Summary Create the replacement contact (step 2)
// @Description Derives the next account number and creates the new occupier's contact from the outgoing one
// @Tags transitions
// @Accept json
// @Produce json
// @Param runID path string true "Run ID"
// @Param request body dto.CreateContactRequest true "New occupier details"
// @Success 200 {object} dto.TransitionStateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Account number already in use"
// @Security BearerAuth
// @Router /transitions/{runID}/contact [post]
func (h *transitionHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createContact", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": middleware.FormatBindingError(err)})
		return
	}

	run, err := h.workflow.CreateContact(c.Request.Context(), c.Param("runID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionStateResponse(run))
}

// nextAvailableAccount godoc
// @Summary Probe for the next free account number
// @Description After an account number conflict, finds the first free sequence for the given contact code
// @Tags transitions
// @Produce json
// @Param runID path string true "Run ID"
// @Param code query string true "Contact code suffix, e.g. 3B"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string "Sequence exhausted"
// @Security BearerAuth
// @Router /transitions/{runID}/next-account [get]
func (h *transitionHandler) nextAvailableAccount(c *gin.Context) {
	run, err := h.workflow.Get(c.Request.Context(), c.Param("runID"))
	if err != nil {
		respondError(c, err)
		return
	}

	base, err := domain.ParseAccountNumber(run.OldContact.AccountNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	account, err := h.contacts.FindNextAvailableAccount(c.Request.Context(), base, c.Query("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountNumber": account})
}

// reassignInvoices godoc
// @Summary Reassign invoices to the new contact (step 3)
// @Description Re-points each selected invoice independently; partial failures are reported per invoice
// @Tags transitions
// @Accept json
// @Produce json
// @Param runID path string true "Run ID"
// @Param request body dto.ReassignInvoicesRequest true "Invoice selection"
// @Success 200 {object} dto.TransitionStateResponse
// @Failure 400 {object} map[string]string "Unknown invoice selected"
// @Failure 409 {object} map[string]string "Step out of order"
// @Security BearerAuth
// @Router /transitions/{runID}/invoices [post]
func (h *transitionHandler) reassignInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReassignInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reassignInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": middleware.FormatBindingError(err)})
		return
	}

	run, err := h.workflow.ReassignInvoices(c.Request.Context(), c.Param("runID"), req.InvoiceIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionStateResponse(run))
}

// skipInvoices godoc
// @Summary Skip invoice reassignment (step 3)
// @Tags transitions
// @Produce json
// @Param runID path string true "Run ID"
// @Success 200 {object} dto.TransitionStateResponse
// @Failure 409 {object} map[string]string "Step out of order"
// @Security BearerAuth
// @Router /transitions/{runID}/invoices/skip [post]
func (h *transitionHandler) skipInvoices(c *gin.Context) {
	run, err := h.workflow.SkipInvoices(c.Request.Context(), c.Param("runID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionStateResponse(run))
}

// transferTemplate godoc
// @Summary Transfer the repeating template (step 4)
// @Description Clones the outgoing contact's single active template onto the new contact; optionally removes the source template afterwards
// @Tags transitions
// @Accept json
// @Produce json
// @Param runID path string true "Run ID"
// @Param request body dto.TransferTemplateRequest false "Source template handling"
// @Success 200 {object} dto.TransitionStateResponse
// @Failure 409 {object} map[string]string "No single active template"
// @Security BearerAuth
// @Router /transitions/{runID}/template [post]
func (h *transitionHandler) transferTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferTemplateRequest
	// The body is optional; an empty request keeps the source template.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for transferTemplate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": middleware.FormatBindingError(err)})
			return
		}
	}

	run, err := h.workflow.TransferTemplate(c.Request.Context(), c.Param("runID"), req.DeleteSource)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionStateResponse(run))
}

// skipTemplate godoc
// @Summary Skip the template transfer (step 4)
// @Tags transitions
// @Produce json
// @Param runID path string true "Run ID"
// @Success 200 {object} dto.TransitionStateResponse
// @Failure 409 {object} map[string]string "Step out of order"
// @Security BearerAuth
// @Router /transitions/{runID}/template/skip [post]
func (h *transitionHandler) skipTemplate(c *gin.Context) {
	run, err := h.workflow.SkipTemplate(c.Request.Context(), c.Param("runID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionStateResponse(run))
}

// resolvePrevious godoc
// @Summary Resolve the previous contact (step 5)
// @Description Reads the balance and archives or keeps the vacated contact active under the /P code
// @Tags transitions
// @Produce json
// @Param runID path string true "Run ID"
// @Success 200 {object} dto.TransitionStateResponse
// @Failure 502 {object} map[string]string "Balance unavailable"
// @Security BearerAuth
// @Router /transitions/{runID}/previous [post]
func (h *transitionHandler) resolvePrevious(c *gin.Context) {
	run, err := h.workflow.ResolvePrevious(c.Request.Context(), c.Param("runID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionStateResponse(run))
}

// splitInvoice godoc
// @Summary Split the latest unpaid invoice pro-rata
// @Description Divides the invoice between the occupiers by days; preview unless execute is set
// @Tags transitions
// @Accept json
// @Produce json
// @Param runID path string true "Run ID"
// @Param request body dto.SplitInvoiceRequest true "Split dates"
// @Success 200 {object} dto.InvoiceSplitResponse
// @Failure 400 {object} map[string]string "Dates outside the billing period"
// @Failure 404 {object} map[string]string "No unpaid invoice"
// @Security BearerAuth
// @Router /transitions/{runID}/split [post]
func (h *transitionHandler) splitInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SplitInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for splitInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": middleware.FormatBindingError(err)})
		return
	}

	outcome, err := h.workflow.SplitInvoice(c.Request.Context(), c.Param("runID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	newInvoiceID := ""
	if outcome.NewInvoice != nil {
		newInvoiceID = outcome.NewInvoice.InvoiceID
	}
	c.JSON(http.StatusOK, dto.ToInvoiceSplitResponse(&outcome.Source, outcome.Split, outcome.NewInvoice != nil, newInvoiceID))
}

// abandonTransition godoc
// @Summary Abandon a transition run
// @Description Marks the run abandoned; effects already applied in the remote system are left as they are
// @Tags transitions
// @Produce json
// @Param runID path string true "Run ID"
// @Success 200 {object} dto.TransitionStateResponse
// @Failure 409 {object} map[string]string "Run already finished"
// @Security BearerAuth
// @Router /transitions/{runID}/abandon [post]
func (h *transitionHandler) abandonTransition(c *gin.Context) {
	run, err := h.workflow.Abandon(c.Request.Context(), c.Param("runID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionStateResponse(run))
}
