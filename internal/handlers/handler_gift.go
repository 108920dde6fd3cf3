package handlers

import (
	"net/http"

	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/dto"
	"github.com/giftvote/giftvote_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// giftHandler handles HTTP requests related to the gift catalog.
type giftHandler struct {
	giftService portssvc.GiftSvcFacade
}

// newGiftHandler creates a new giftHandler.
func newGiftHandler(gs portssvc.GiftSvcFacade) *giftHandler {
	return &giftHandler{giftService: gs}
}

// registerGiftRoutes registers all gift-related routes.
func registerGiftRoutes(rg *gin.RouterGroup, giftService portssvc.GiftSvcFacade) {
	h := newGiftHandler(giftService)

	gifts := rg.Group("/gifts")
	{
		gifts.GET("", h.listGifts)
		gifts.GET("/:id", h.getGift)
		gifts.POST("", h.createGift)
		gifts.PUT("/:id", h.updateGift)
	}
}

// createGift godoc
// @Summary Add a gift to the catalog
// @Tags gifts
// @Accept json
// @Produce json
// @Param gift body dto.CreateGiftRequest true "Gift details"
// @Success 201 {object} dto.GiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /gifts [post]
func (h *giftHandler) createGift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	gift, err := h.giftService.CreateGift(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToGiftResponse(gift))
}

// updateGift godoc
// @Summary Update a gift
// @Tags gifts
// @Accept json
// @Produce json
// @Param id path string true "Gift ID"
// @Param gift body dto.UpdateGiftRequest true "Fields to update"
// @Success 200 {object} dto.GiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /gifts/{id} [put]
func (h *giftHandler) updateGift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	gift, err := h.giftService.UpdateGift(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGiftResponse(gift))
}

// getGift godoc
// @Summary Get a gift by ID
// @Tags gifts
// @Produce json
// @Param id path string true "Gift ID"
// @Success 200 {object} dto.GiftResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /gifts/{id} [get]
func (h *giftHandler) getGift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	gift, err := h.giftService.GetGiftByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGiftResponse(gift))
}

// listGifts godoc
// @Summary List the gift catalog
// @Tags gifts
// @Produce json
// @Success 200 {object} dto.ListGiftsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /gifts [get]
func (h *giftHandler) listGifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	gifts, err := h.giftService.ListGifts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListGiftsResponse(gifts))
}
