package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/application/service"
	"github.com/prasetia/cetakindo-api/internal/presentation/http/dto/response"
	"github.com/prasetia/cetakindo-api/pkg/apperror"
	"github.com/prasetia/cetakindo-api/pkg/pagination"
)

// MasterHandler is the generic HTTP handler for simple master-data
// entities. Create binds the request body straight into the entity;
// Update binds it over the stored record so absent fields keep their
// values.
type MasterHandler[T any] struct {
	svc      *service.MasterService[T]
	resource string
}

// NewMasterHandler creates a generic master-data handler
func NewMasterHandler[T any](svc *service.MasterService[T], resource string) *MasterHandler[T] {
	return &MasterHandler[T]{svc: svc, resource: resource}
}

// List handles listing records
func (h *MasterHandler[T]) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.svc.List(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, h.resource+" list retrieved successfully", result)
}

// Create handles creating a record
func (h *MasterHandler[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &record)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, h.resource+" created successfully", created)
}

// Get handles getting a single record
func (h *MasterHandler[T]) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+h.resource+" ID")
		return
	}

	record, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.resource+" retrieved successfully", record)
}

// Update handles updating a record
func (h *MasterHandler[T]) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+h.resource+" ID")
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, func(record *T) error {
		if err := c.ShouldBindJSON(record); err != nil {
			return apperror.NewBadRequestError("Invalid request body")
		}
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.resource+" updated successfully", updated)
}

// Delete handles deleting a record
func (h *MasterHandler[T]) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+h.resource+" ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.resource+" deleted successfully", nil)
}
