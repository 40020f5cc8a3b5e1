package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/type/latlng"

	"AllyBackend/internal/models"
	"AllyBackend/pkg/middleware"
	"AllyBackend/pkg/response"
)

// 一次最多返回的 OPEN 警报数
const maxOpenAlerts = 10

type sosTriggerRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type volunteerStatusRequest struct {
	IsAvailable *bool    `json:"isAvailable"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// hasCoordinate 坐标缺失或为 0 都按缺失处理
func hasCoordinate(v *float64) bool {
	return v != nil && *v != 0
}

// handleTriggerSOS 触发 SOS 警报，状态固定 OPEN，时间戳由存储端生成
// 没有派单逻辑，"searching for nearby volunteer" 只是提示文案
func (h *Handlers) handleTriggerSOS(c *gin.Context) {
	var req sosTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Missing location data for SOS.")
		return
	}
	if !hasCoordinate(req.Latitude) || !hasCoordinate(req.Longitude) {
		response.Fail(c, http.StatusBadRequest, "Missing location data for SOS.")
		return
	}

	alert := models.SOSAlert{
		UserID: middleware.CurrentUserID(c),
		Location: &latlng.LatLng{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		},
		Status:     models.AlertStatusOpen,
		AssignedTo: nil,
	}

	alertID, err := h.stores.Alerts.Create(c.Request.Context(), &alert)
	if err != nil {
		failWith(c, err, "Server error triggering SOS.")
		return
	}

	response.Success(c, http.StatusAccepted, "SOS alert triggered successfully. Searching for nearby volunteer.", gin.H{
		"alertId": alertID,
	})
}

// handleListSOSAlerts 列出 OPEN 状态警报，至多 10 条
func (h *Handlers) handleListSOSAlerts(c *gin.Context) {
	alerts, err := h.stores.Alerts.ListOpen(c.Request.Context(), maxOpenAlerts)
	if err != nil {
		failWith(c, err, "Server error fetching alerts.")
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// handleVolunteerStatus 更新志愿者可用状态
// 上线且带坐标时写入位置记录，下线时删除位置记录
func (h *Handlers) handleVolunteerStatus(c *gin.Context) {
	var req volunteerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Missing or invalid isAvailable status.")
		return
	}
	if req.IsAvailable == nil {
		response.Fail(c, http.StatusBadRequest, "Missing or invalid isAvailable status.")
		return
	}

	ctx := c.Request.Context()
	userID := middleware.CurrentUserID(c)
	available := *req.IsAvailable

	if err := h.stores.Users.SetAvailability(ctx, userID, available); err != nil {
		failWith(c, err, "Server error updating status.")
		return
	}

	if available && hasCoordinate(req.Latitude) && hasCoordinate(req.Longitude) {
		location := &latlng.LatLng{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if err := h.stores.Users.UpsertLocation(ctx, userID, location); err != nil {
			failWith(c, err, "Server error updating status.")
			return
		}
	} else if !available {
		if err := h.stores.Users.DeleteLocation(ctx, userID); err != nil {
			failWith(c, err, "Server error updating status.")
			return
		}
	}

	status := "unavailable"
	if available {
		status = "available"
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("Volunteer status set to %s.", status), nil)
}
