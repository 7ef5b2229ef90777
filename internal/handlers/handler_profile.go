package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests related to the user's profile and base currency.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// RegisterProfileRoutes registers routes related to the user profile.
func RegisterProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
		profile.PUT("/currency", h.changeCurrency)
		profile.DELETE("/data", h.deleteAllData)
	}
}

// getProfile godoc
// @Summary Get the current user's profile
// @Description Returns the profile, defaulting to USD when the user never saved one
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get profile"
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "get profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateProfile godoc
// @Summary Update the current user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile details"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update profile"
// @Security BearerAuth
// @Router /profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// changeCurrency godoc
// @Summary Change the base currency
// @Description Converts every stored amount into the new currency and switches the profile atomically
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.ChangeCurrencyRequest true "New base currency"
// @Success 200 {object} domain.RebaseResult
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Base currency changed concurrently"
// @Failure 502 {object} map[string]string "Exchange rate unavailable"
// @Failure 500 {object} map[string]string "Failed to change base currency"
// @Security BearerAuth
// @Router /profile/currency [put]
func (h *profileHandler) changeCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangeCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ChangeCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.profileService.ChangeBaseCurrency(c.Request.Context(), userID, domain.NormalizeCurrencyCode(req.Currency))
	if err != nil {
		respondServiceError(c, err, "change base currency")
		return
	}
	c.JSON(http.StatusOK, result)
}

// deleteAllData godoc
// @Summary Delete all ledger data
// @Description Removes every asset, liability, expense and trade of the user. The profile is kept.
// @Tags profile
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to delete data"
// @Security BearerAuth
// @Router /profile/data [delete]
func (h *profileHandler) deleteAllData(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.profileService.DeleteAllData(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "delete data")
		return
	}
	c.Status(http.StatusNoContent)
}
