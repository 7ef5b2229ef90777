package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests related to assets and investments.
type assetHandler struct {
	assetService   portssvc.AssetSvcFacade
	profileService portssvc.ProfileReaderSvc
}

func newAssetHandler(as portssvc.AssetSvcFacade, ps portssvc.ProfileReaderSvc) *assetHandler {
	return &assetHandler{assetService: as, profileService: ps}
}

// registerAssetRoutes registers routes related to assets and investments.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade, profileService portssvc.ProfileReaderSvc) {
	h := newAssetHandler(assetService, profileService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.DELETE("/:assetID", h.deleteAsset)
	}
	rg.POST("/investments", h.createInvestment)
}

// createAsset godoc
// @Summary Record an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "create asset")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset, currencyFor(c, h.profileService, userID)))
}

// createInvestment godoc
// @Summary Record an investment
// @Description Stores an asset of type "investment"
// @Tags assets
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create investment"
// @Security BearerAuth
// @Router /investments [post]
func (h *assetHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	asset, err := h.assetService.CreateInvestment(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "create investment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset, currencyFor(c, h.profileService, userID)))
}

// listAssets godoc
// @Summary List assets
// @Tags assets
// @Produce json
// @Param type query string false "Only assets of this type"
// @Success 200 {array} dto.AssetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	assets, err := h.assetService.ListAssets(c.Request.Context(), userID, params.Type)
	if err != nil {
		respondServiceError(c, err, "list assets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets, currencyFor(c, h.profileService, userID)))
}

// deleteAsset godoc
// @Summary Delete an asset
// @Tags assets
// @Param assetID path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to delete asset"
// @Security BearerAuth
// @Router /assets/{assetID} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.assetService.DeleteAsset(c.Request.Context(), userID, c.Param("assetID")); err != nil {
		respondServiceError(c, err, "delete asset")
		return
	}
	c.Status(http.StatusNoContent)
}
