package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/httpresp"
	"github.com/barbershop/scheduler/internal/middleware"
	"github.com/barbershop/scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.WriteError(c, err)
		return
	}

	out := gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	}

	// anexa o perfil correspondente ao papel, quando existir
	switch user.Role {
	case models.RoleCustomer:
		var cust models.Customer
		if err := h.db.First(&cust, "user_id = ?", user.ID).Error; err == nil {
			out["customer"] = cust
		}
	case models.RoleBarber:
		var barber models.Barber
		if err := h.db.First(&barber, "user_id = ?", user.ID).Error; err == nil {
			out["barber"] = barber
		}
	}

	httpresp.OK(c, out)
}
