// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wooshcafe/woosh-backend/internal/i18n"
	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/utils"
)

type CartHandler struct {
	orderService *services.OrderService
}

func NewCartHandler(orderService *services.OrderService) *CartHandler {
	return &CartHandler{
		orderService: orderService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"lines": h.orderService.CartLines(),
		"total": h.orderService.CartTotal(),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	added, err := h.orderService.AddToCart(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	message := i18n.T(lang, i18n.KeyCartItemAdded)
	if !added {
		// Non-numeric price: deliberate no-op, not an error
		message = i18n.T(lang, i18n.KeyCartItemSkipped)
	}

	utils.SuccessResponse(c, gin.H{
		"message": message,
		"added":   added,
		"lines":   h.orderService.CartLines(),
		"total":   h.orderService.CartTotal(),
	})
}

// DELETE /cart/items/:name
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.orderService.RemoveFromCart(c.Param("name"))

	utils.SuccessResponse(c, gin.H{
		"lines": h.orderService.CartLines(),
		"total": h.orderService.CartTotal(),
	})
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	order, err := h.orderService.Checkout()
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.UnprocessableResponse(c, "EMPTY_CART", i18n.T(lang, i18n.KeyCartEmpty))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderPlaced),
		"order":   order,
	})
}
