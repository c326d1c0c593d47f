package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/application/service"
	"github.com/prasetia/cetakindo-api/internal/presentation/http/dto/response"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
)

// MaterialHandler handles material catalog HTTP requests
type MaterialHandler struct {
	materialService *service.MaterialService
}

// NewMaterialHandler creates a new material handler
func NewMaterialHandler(materialService *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// List handles listing materials
func (h *MaterialHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.materialService.ListMaterials(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Materials retrieved successfully", result)
}

// Create handles creating a material
func (h *MaterialHandler) Create(c *gin.Context) {
	var req struct {
		Name             string  `json:"name" binding:"required"`
		Unit             string  `json:"unit"`
		PriceEndCustomer float64 `json:"price_end_customer"`
		PriceRetail      float64 `json:"price_retail"`
		PriceGrosir      float64 `json:"price_grosir"`
		PriceReseller    float64 `json:"price_reseller"`
		PriceCorporate   float64 `json:"price_corporate"`
		InitialStock     float64 `json:"initial_stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	material, err := h.materialService.CreateMaterial(c.Request.Context(), &service.CreateMaterialInput{
		Name:             req.Name,
		Unit:             req.Unit,
		PriceEndCustomer: req.PriceEndCustomer,
		PriceRetail:      req.PriceRetail,
		PriceGrosir:      req.PriceGrosir,
		PriceReseller:    req.PriceReseller,
		PriceCorporate:   req.PriceCorporate,
		InitialStock:     req.InitialStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Material created successfully", material)
}

// Get handles getting a single material
func (h *MaterialHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid material ID")
		return
	}

	material, err := h.materialService.GetMaterial(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Material retrieved successfully", material)
}

// Update handles updating a material's catalog fields
func (h *MaterialHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid material ID")
		return
	}

	var req struct {
		Name             *string  `json:"name"`
		Unit             *string  `json:"unit"`
		PriceEndCustomer *float64 `json:"price_end_customer"`
		PriceRetail      *float64 `json:"price_retail"`
		PriceGrosir      *float64 `json:"price_grosir"`
		PriceReseller    *float64 `json:"price_reseller"`
		PriceCorporate   *float64 `json:"price_corporate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	material, err := h.materialService.UpdateMaterial(c.Request.Context(), id, &service.UpdateMaterialInput{
		Name:             req.Name,
		Unit:             req.Unit,
		PriceEndCustomer: req.PriceEndCustomer,
		PriceRetail:      req.PriceRetail,
		PriceGrosir:      req.PriceGrosir,
		PriceReseller:    req.PriceReseller,
		PriceCorporate:   req.PriceCorporate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Material updated successfully", material)
}

// Delete handles deleting a material
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid material ID")
		return
	}

	if err := h.materialService.DeleteMaterial(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Material deleted successfully", nil)
}
