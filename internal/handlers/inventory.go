// internal/handlers/inventory.go
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wooshcafe/woosh-backend/internal/i18n"
	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/store"
	"github.com/wooshcafe/woosh-backend/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// GET /inventory
func (h *InventoryHandler) GetItems(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"items": h.inventoryService.ListItems(),
	})
}

// POST /inventory/:id/restock
func (h *InventoryHandler) Restock(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	// Empty body means "use the suggested quantity".
	var req restockRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	item, quantity, err := h.inventoryService.SubmitRestock(c.Param("id"), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInventoryItemNotFound):
			utils.NotFoundResponse(c, "inventory")
		case errors.Is(err, services.ErrRestockInvalidQuantity):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyRestockInvalidQty), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyRestockSubmitted, quantity),
		"item":     item,
		"quantity": quantity,
	})
}

// GET /inventory/export
func (h *InventoryHandler) ExportCSV(c *gin.Context) {
	data, err := h.inventoryService.ExportCSV()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="woosh_inventory.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// POST /inventory/import
//
// The body is the raw CSV, as the dashboard's file picker uploads it.
func (h *InventoryHandler) ImportCSV(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	count, err := h.inventoryService.ImportCSV(data)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "csv"), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyInventoryImported),
		"imported": count,
		"items":    h.inventoryService.ListItems(),
	})
}
