package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/httpresp"
	ucReport "github.com/barbershop/scheduler/internal/usecase/report"
)

type ReportHandler struct {
	reports *ucReport.ReportUseCase
}

func NewReportHandler(reports *ucReport.ReportUseCase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Daily: GET /reports/daily?date=YYYY-MM-DD
func (h *ReportHandler) Daily(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data deve estar no formato YYYY-MM-DD.")
		return
	}

	report, err := h.reports.Daily(c.Request.Context(), date)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, report)
}

// Monthly: GET /reports/monthly?month=M&year=YYYY
func (h *ReportHandler) Monthly(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês deve estar entre 1 e 12.")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	report, err := h.reports.Monthly(c.Request.Context(), month, year)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, report)
}
