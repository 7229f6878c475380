package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	barberdomain "github.com/barbershop/scheduler/internal/domain/barber"
	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/httpresp"
	"github.com/barbershop/scheduler/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type AddSpecialtyRequest struct {
	Specialty string `json:"specialty" binding:"required"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Preload("User").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	var barber models.Barber
	if err := h.db.Preload("User").First(&barber, "id = ?", c.Param("id")).Error; err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, barber)
}

// AddSpecialty acrescenta uma especialidade à lista do barbeiro. Entradas
// duplicadas são ignoradas sem erro.
func (h *BarberHandler) AddSpecialty(c *gin.Context) {
	var req AddSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", c.Param("id")).Error; err != nil {
		httperr.WriteError(c, err)
		return
	}

	if barberdomain.AddSpecialty(&barber, req.Specialty) {
		if err := h.db.Save(&barber).Error; err != nil {
			httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
			return
		}
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	if err := h.db.Delete(&models.Barber{}, "id = ?", c.Param("id")).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}
	c.Status(http.StatusNoContent)
}
