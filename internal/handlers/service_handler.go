package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	servicedomain "github.com/barbershop/scheduler/internal/domain/service"
	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/httpresp"
	"github.com/barbershop/scheduler/internal/models"
	ucService "github.com/barbershop/scheduler/internal/usecase/service"
)

type ServiceHandler struct {
	db      *gorm.DB
	priceUC *ucService.CalculateServicePrice
}

func NewServiceHandler(db *gorm.DB, priceUC *ucService.CalculateServicePrice) *ServiceHandler {
	return &ServiceHandler{db: db, priceUC: priceUC}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Type        string  `json:"type"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Type        *string  `json:"type"`
}

type PriceQuoteRequest struct {
	ServiceIDs []string `json:"service_ids" binding:"required"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svcType := req.Type
	if svcType == "" {
		svcType = string(servicedomain.DetectTypeFromName(req.Name))
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Type:        svcType,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	// fallback de compatibilidade para registros sem tipo
	for i := range services {
		if services[i].Type == "" {
			services[i].Type = string(servicedomain.DetectTypeFromName(services[i].Name))
		}
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, "id = ?", c.Param("id")).Error; err != nil {
		httperr.WriteError(c, err)
		return
	}

	if svc.Type == "" {
		svc.Type = string(servicedomain.DetectTypeFromName(svc.Name))
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, "id = ?", c.Param("id")).Error; err != nil {
		httperr.WriteError(c, err)
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
		// nome mudou sem tipo explícito → re-deriva
		if req.Type == nil {
			svc.Type = string(servicedomain.DetectTypeFromName(svc.Name))
		}
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.Type != nil {
		svc.Type = *req.Type
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.db.Delete(&models.Service{}, "id = ?", c.Param("id")).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// COTAÇÃO
// ======================================================

func (h *ServiceHandler) PriceQuote(c *gin.Context) {
	var req PriceQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	total, err := h.priceUC.Execute(c.Request.Context(), req.ServiceIDs)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"total_price": total})
}
