package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/application/service"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/prasetia/cetakindo-api/internal/presentation/http/dto/response"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
)

// StockHandler handles stock ledger HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Move handles booking a manual stock movement
func (h *StockHandler) Move(c *gin.Context) {
	var req struct {
		MaterialID uuid.UUID  `json:"material_id" binding:"required"`
		Type       string     `json:"type" binding:"required"`
		Qty        float64    `json:"qty" binding:"required,gt=0"`
		SupplierID *uuid.UUID `json:"supplier_id"`
		Notes      *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var movementType enum.MovementType
	switch req.Type {
	case "in":
		movementType = enum.MovementIn
	case "out":
		movementType = enum.MovementOut
	default:
		response.BadRequest(c, "Movement type must be in or out")
		return
	}

	movement, err := h.stockService.ApplyMovement(c.Request.Context(), &service.ApplyMovementInput{
		MaterialID: req.MaterialID,
		Type:       movementType,
		Qty:        req.Qty,
		SupplierID: req.SupplierID,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock movement recorded successfully", movement)
}

// List handles listing ledger rows
func (h *StockHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	var materialID *uuid.UUID
	if materialIDStr := c.Query("material_id"); materialIDStr != "" {
		if id, err := uuid.Parse(materialIDStr); err == nil {
			materialID = &id
		}
	}

	result, err := h.stockService.ListMovements(c.Request.Context(), params, materialID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock movements retrieved successfully", result)
}

// Opname handles reconciling a physical count
func (h *StockHandler) Opname(c *gin.Context) {
	var req struct {
		MaterialID uuid.UUID `json:"material_id" binding:"required"`
		CountedQty *float64  `json:"counted_qty" binding:"required"`
		Notes      *string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.stockService.Opname(c.Request.Context(), req.MaterialID, *req.CountedQty, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	if movement == nil {
		response.OK(c, "Stock already matches the count", nil)
		return
	}
	response.OK(c, "Stock opname recorded successfully", movement)
}

// Audit handles comparing cached stock against the ledger
func (h *StockHandler) Audit(c *gin.Context) {
	results, err := h.stockService.Audit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock audit completed", results)
}

// NegativeStock handles listing materials in stock deficit
func (h *StockHandler) NegativeStock(c *gin.Context) {
	materials, err := h.stockService.NegativeStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Negative stock materials retrieved successfully", materials)
}
