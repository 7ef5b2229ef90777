package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type liabilityHandler struct {
	liabilityService portssvc.LiabilitySvcFacade
	profileService   portssvc.ProfileReaderSvc
}

func registerLiabilityRoutes(rg *gin.RouterGroup, liabilityService portssvc.LiabilitySvcFacade, profileService portssvc.ProfileReaderSvc) {
	h := &liabilityHandler{liabilityService: liabilityService, profileService: profileService}

	liabilities := rg.Group("/liabilities")
	{
		liabilities.POST("", h.createLiability)
		liabilities.GET("", h.listLiabilities)
		liabilities.DELETE("/:liabilityID", h.deleteLiability)
	}
}

// createLiability godoc
// @Summary Record a liability
// @Tags liabilities
// @Accept json
// @Produce json
// @Param liability body dto.CreateLiabilityRequest true "Liability details"
// @Success 201 {object} dto.LiabilityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create liability"
// @Security BearerAuth
// @Router /liabilities [post]
func (h *liabilityHandler) createLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLiability", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	liability, err := h.liabilityService.CreateLiability(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "create liability")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLiabilityResponse(liability, currencyFor(c, h.profileService, userID)))
}

// listLiabilities godoc
// @Summary List liabilities
// @Tags liabilities
// @Produce json
// @Success 200 {array} dto.LiabilityResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list liabilities"
// @Security BearerAuth
// @Router /liabilities [get]
func (h *liabilityHandler) listLiabilities(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	liabilities, err := h.liabilityService.ListLiabilities(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "list liabilities")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLiabilityResponse(liabilities, currencyFor(c, h.profileService, userID)))
}

// deleteLiability godoc
// @Summary Delete a liability
// @Tags liabilities
// @Param liabilityID path string true "Liability ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Liability not found"
// @Failure 500 {object} map[string]string "Failed to delete liability"
// @Security BearerAuth
// @Router /liabilities/{liabilityID} [delete]
func (h *liabilityHandler) deleteLiability(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.liabilityService.DeleteLiability(c.Request.Context(), userID, c.Param("liabilityID")); err != nil {
		respondServiceError(c, err, "delete liability")
		return
	}
	c.Status(http.StatusNoContent)
}
