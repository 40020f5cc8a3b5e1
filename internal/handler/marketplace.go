package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AllyBackend/internal/models"
	"AllyBackend/pkg/middleware"
	"AllyBackend/pkg/response"
)

// 一次最多返回的商品数
const maxProducts = 20

type checkoutRequest struct {
	Items       []models.OrderItem `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
}

// handleListProducts 列出已审核商品，至多 20 条
func (h *Handlers) handleListProducts(c *gin.Context) {
	products, err := h.stores.Market.ListVerified(c.Request.Context(), maxProducts)
	if err != nil {
		failWith(c, err, "Server error fetching products.")
		return
	}
	c.JSON(http.StatusOK, products)
}

// handleGetProduct 商品详情
func (h *Handlers) handleGetProduct(c *gin.Context) {
	product, err := h.stores.Market.Get(c.Request.Context(), c.Param("productId"))
	if err != nil {
		failWith(c, err, "Server error fetching product details.")
		return
	}
	c.JSON(http.StatusOK, product)
}

// handleCheckout 结算下单
// 支付是模拟的，固定返回 PAID；无幂等键，重复请求会生成重复订单
func (h *Handlers) handleCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid checkout payload.")
		return
	}

	order := models.Order{
		UserID:      middleware.CurrentUserID(c),
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
		Status:      models.OrderStatusProcessing,
	}

	orderID, err := h.stores.Market.CreateOrder(c.Request.Context(), &order)
	if err != nil {
		failWith(c, err, "Server error during checkout.")
		return
	}

	response.Success(c, http.StatusOK, "Order received. Payment simulation successful.", gin.H{
		"orderId":       orderID,
		"paymentStatus": "PAID",
	})
}
