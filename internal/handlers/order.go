// internal/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wooshcafe/woosh-backend/internal/i18n"
	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/store"
	"github.com/wooshcafe/woosh-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

type updateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders := h.orderService.ListOrders()
	page, total := utils.PaginateSlice(orders, params)

	result := utils.CreatePaginationResult(page, total, params)
	utils.PaginatedResponse(c, result)
}

// PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if !req.Status.Valid() {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "status"), nil)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "order")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderStatusMoved),
		"order":   order,
	})
}

// GET /orders/export
func (h *OrderHandler) ExportCSV(c *gin.Context) {
	data, err := utils.OrdersToCSV(h.orderService.ListOrders())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="woosh_orders.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
