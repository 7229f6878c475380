package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	customerdomain "github.com/barbershop/scheduler/internal/domain/customer"
	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/httpresp"
	"github.com/barbershop/scheduler/internal/models"
	"github.com/barbershop/scheduler/internal/timezone"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// UpdateCustomerRequest é o único caminho de mutação do perfil; a idade é
// sempre derivada, nunca gravada.
type UpdateCustomerRequest struct {
	BirthDate  *string `json:"birth_date"`
	HasAllergy *bool   `json:"has_allergy"`
}

type customerResponse struct {
	models.Customer
	Age         int  `json:"age"`
	CanBeServed bool `json:"can_be_served"`
}

func toCustomerResponse(c models.Customer) customerResponse {
	now := timezone.Now()
	return customerResponse{
		Customer:    c,
		Age:         customerdomain.Age(&c, now),
		CanBeServed: customerdomain.CanBeServed(&c, now),
	}
}

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.Preload("User").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar clientes.")
		return
	}

	out := make([]customerResponse, 0, len(customers))
	for _, cust := range customers {
		out = append(out, toCustomerResponse(cust))
	}

	httpresp.List(c, out)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	var cust models.Customer
	if err := h.db.Preload("User").First(&cust, "id = ?", c.Param("id")).Error; err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, toCustomerResponse(cust))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var cust models.Customer
	if err := h.db.First(&cust, "id = ?", c.Param("id")).Error; err != nil {
		httperr.WriteError(c, err)
		return
	}

	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data deve estar no formato YYYY-MM-DD.")
			return
		}
		cust.BirthDate = birthDate
	}

	if req.HasAllergy != nil {
		cust.HasAllergy = *req.HasAllergy
	}

	if err := h.db.Save(&cust).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, toCustomerResponse(cust))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.db.Delete(&models.Customer{}, "id = ?", c.Param("id")).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Erro ao remover cliente.")
		return
	}
	c.Status(http.StatusNoContent)
}
