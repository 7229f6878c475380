package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbershop/scheduler/internal/dto"
	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/httpresp"
	"github.com/barbershop/scheduler/internal/models"
	ucSchedule "github.com/barbershop/scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	createUC   *ucSchedule.CreateSchedule
	confirmUC  *ucSchedule.ConfirmSchedule
	cancelUC   *ucSchedule.CancelSchedule
	completeUC *ucSchedule.CompleteSchedule
	listUC     *ucSchedule.ListSchedules
}

func NewScheduleHandler(
	createUC *ucSchedule.CreateSchedule,
	confirmUC *ucSchedule.ConfirmSchedule,
	cancelUC *ucSchedule.CancelSchedule,
	completeUC *ucSchedule.CompleteSchedule,
	listUC *ucSchedule.ListSchedules,
) *ScheduleHandler {
	return &ScheduleHandler{
		createUC:   createUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateScheduleRequest struct {
	CustomerID string   `json:"customer_id" binding:"required"`
	BarberID   string   `json:"barber_id" binding:"required"`
	Date       string   `json:"date" binding:"required"` // RFC 3339
	ServiceIDs []string `json:"service_ids" binding:"required,min=1"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data deve estar no formato RFC 3339.")
		return
	}

	sch, err := h.createUC.Execute(c.Request.Context(), ucSchedule.CreateScheduleInput{
		CustomerID: req.CustomerID,
		BarberID:   req.BarberID,
		Date:       date,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sch)
}

// ======================================================
// TRANSIÇÕES
// ======================================================

func (h *ScheduleHandler) Confirm(c *gin.Context) {
	sch, err := h.confirmUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, sch)
}

func (h *ScheduleHandler) Cancel(c *gin.Context) {
	sch, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, sch)
}

func (h *ScheduleHandler) Complete(c *gin.Context) {
	sch, err := h.completeUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, sch)
}

// ======================================================
// LISTAGEM
// ======================================================

// List aceita filtros mutuamente exclusivos: ?date=, ?customer_id=,
// ?barber_id=. Sem filtro, retorna tudo.
func (h *ScheduleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		schedules []models.Schedule
		err       error
	)

	switch {
	case c.Query("date") != "":
		var date time.Time
		date, err = time.Parse("2006-01-02", c.Query("date"))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data deve estar no formato YYYY-MM-DD.")
			return
		}
		schedules, err = h.listUC.ByDate(ctx, date)

	case c.Query("customer_id") != "":
		schedules, err = h.listUC.ByCustomer(ctx, c.Query("customer_id"))

	case c.Query("barber_id") != "":
		schedules, err = h.listUC.ByBarber(ctx, c.Query("barber_id"))

	default:
		schedules, err = h.listUC.All(ctx)
	}

	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	out := make([]dto.ScheduleListDTO, 0, len(schedules))
	for i := range schedules {
		sch := &schedules[i]

		total := 0.0
		for _, row := range sch.Services {
			total += row.Price
		}

		out = append(out, dto.ScheduleListDTO{
			ID:           sch.ID,
			Date:         sch.Date,
			Status:       sch.Status,
			CustomerName: sch.Customer.User.Name,
			BarberName:   sch.Barber.User.Name,
			TotalPrice:   total,
		})
	}

	httpresp.List(c, out)
}
