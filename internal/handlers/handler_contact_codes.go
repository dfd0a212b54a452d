package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edinstair/property_transition_app/internal/core/domain"
	"github.com/edinstair/property_transition_app/internal/dto"
)

// registerContactCodeRoutes registers the contact code reference routes.
func registerContactCodeRoutes(rg *gin.RouterGroup) {
	rg.GET("/contact-codes", listContactCodes)
}

// listContactCodes godoc
// @Summary List contact codes
// @Description Returns the contact code registry for new-contact pickers
// @Tags contact-codes
// @Produce json
// @Success 200 {array} dto.ContactCodeResponse
// @Security BearerAuth
// @Router /contact-codes [get]
func listContactCodes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListContactCodeResponse(domain.AllContactCodes()))
}
