package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AllyBackend/internal/models"
	"AllyBackend/pkg/middleware"
	"AllyBackend/pkg/response"
)

type reviewRequest struct {
	Rating   *int    `json:"rating"`
	Comments *string `json:"comments"`
}

// handleListAccessiblePlaces 列出无障碍地点，可按残障类型过滤
func (h *Handlers) handleListAccessiblePlaces(c *gin.Context) {
	disabilityType := c.Query("disabilityType")

	places, err := h.stores.Places.List(c.Request.Context(), disabilityType)
	if err != nil {
		failWith(c, err, "Server error fetching accessible locations.")
		return
	}
	c.JSON(http.StatusOK, places)
}

// handleSubmitReview 提交无障碍评价，只增不改，不回写地点评分
func (h *Handlers) handleSubmitReview(c *gin.Context) {
	placeID := c.Param("placeId")

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Missing required fields (rating or placeId).")
		return
	}
	// 评分缺失或为 0 都按缺失处理
	if req.Rating == nil || *req.Rating == 0 || placeID == "" {
		response.Fail(c, http.StatusBadRequest, "Missing required fields (rating or placeId).")
		return
	}

	review := models.Review{
		PlaceID:  placeID,
		UserID:   middleware.CurrentUserID(c),
		Rating:   *req.Rating,
		Comments: req.Comments,
	}

	if _, err := h.stores.Places.AddReview(c.Request.Context(), &review); err != nil {
		failWith(c, err, "Server error submitting review.")
		return
	}

	response.Success(c, http.StatusCreated, "Accessibility review submitted successfully.", nil)
}
