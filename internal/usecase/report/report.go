package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/barbershop/scheduler/internal/cache"
	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	"github.com/barbershop/scheduler/internal/models"
	"github.com/barbershop/scheduler/internal/timezone"
)

const cacheTTL = 5 * time.Minute

// ======================================================
// OUTPUT
// ======================================================

type DailyReport struct {
	Date              time.Time      `json:"date"`
	TotalSchedules    int            `json:"total_schedules"`
	SchedulesByStatus map[string]int `json:"schedules_by_status"`
	TotalRevenue      float64        `json:"total_revenue"`
}

type ServiceRanking struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Count       int     `json:"count"`
	Revenue     float64 `json:"revenue"`
}

type BarberRanking struct {
	BarberID           string  `json:"barber_id"`
	BarberName         string  `json:"barber_name"`
	CompletedSchedules int     `json:"completed_schedules"`
	Revenue            float64 `json:"revenue"`
}

type MonthlyReport struct {
	Month                 int              `json:"month"`
	Year                  int              `json:"year"`
	TotalSchedules        int              `json:"total_schedules"`
	SchedulesByStatus     map[string]int   `json:"schedules_by_status"`
	TotalRevenue          float64          `json:"total_revenue"`
	AverageDailySchedules float64          `json:"average_daily_schedules"`
	TopServices           []ServiceRanking `json:"top_services"`
	TopBarbers            []BarberRanking  `json:"top_barbers"`
}

// ======================================================
// USE CASE
// ======================================================

type ReportUseCase struct {
	schedules domain.ScheduleStore
	cache     cache.Client
	log       *zap.Logger
}

func NewReportUseCase(
	schedules domain.ScheduleStore,
	cacheClient cache.Client,
	log *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		schedules: schedules,
		cache:     cacheClient,
		log:       log,
	}
}

// ======================================================
// DAILY
// ======================================================

func (uc *ReportUseCase) Daily(
	ctx context.Context,
	date time.Time,
) (*DailyReport, error) {

	key := fmt.Sprintf("report:daily:%s", date.Format("2006-01-02"))
	if report := cacheGet[DailyReport](uc, ctx, key); report != nil {
		return report, nil
	}

	schedules, err := uc.schedules.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Date:              timezone.StartOfDay(date),
		TotalSchedules:    len(schedules),
		SchedulesByStatus: bucketByStatus(schedules),
		TotalRevenue:      completedRevenue(schedules),
	}

	uc.cachePut(ctx, key, report)
	return report, nil
}

// ======================================================
// MONTHLY
// ======================================================

func (uc *ReportUseCase) Monthly(
	ctx context.Context,
	month int,
	year int,
) (*MonthlyReport, error) {

	key := fmt.Sprintf("report:monthly:%04d-%02d", year, month)
	if report := cacheGet[MonthlyReport](uc, ctx, key); report != nil {
		return report, nil
	}

	loc := timezone.Location()
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)
	daysInMonth := end.AddDate(0, 0, -1).Day()

	schedules, err := uc.schedules.FindByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{
		Month:                 month,
		Year:                  year,
		TotalSchedules:        len(schedules),
		SchedulesByStatus:     bucketByStatus(schedules),
		TotalRevenue:          completedRevenue(schedules),
		AverageDailySchedules: float64(len(schedules)) / float64(daysInMonth),
		TopServices:           topServices(schedules),
		TopBarbers:            topBarbers(schedules),
	}

	uc.cachePut(ctx, key, report)
	return report, nil
}

// ======================================================
// AGREGAÇÕES
// ======================================================

func bucketByStatus(schedules []models.Schedule) map[string]int {
	buckets := make(map[string]int)
	for i := range schedules {
		buckets[schedules[i].Status]++
	}
	return buckets
}

// A receita soma apenas agendamentos COMPLETED, sempre sobre o preço
// congelado em ScheduleService — nunca recalculado pela regra de cotação.
func completedRevenue(schedules []models.Schedule) float64 {
	total := 0.0
	for i := range schedules {
		if schedules[i].Status != string(domain.StatusCompleted) {
			continue
		}
		for _, row := range schedules[i].Services {
			total += row.Price
		}
	}
	return total
}

// topServices acumula na ordem de entrada e ordena de forma estável por
// receita decrescente, preservando a ordem original nos empates.
func topServices(schedules []models.Schedule) []ServiceRanking {
	index := make(map[string]int)
	ranking := []ServiceRanking{}

	for i := range schedules {
		completed := schedules[i].Status == string(domain.StatusCompleted)

		for _, row := range schedules[i].Services {
			pos, ok := index[row.ServiceID]
			if !ok {
				pos = len(ranking)
				index[row.ServiceID] = pos
				ranking = append(ranking, ServiceRanking{
					ServiceID:   row.ServiceID,
					ServiceName: row.Service.Name,
				})
			}

			ranking[pos].Count++
			if completed {
				ranking[pos].Revenue += row.Price
			}
		}
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Revenue > ranking[b].Revenue
	})

	return capRanking(ranking, 5)
}

func topBarbers(schedules []models.Schedule) []BarberRanking {
	index := make(map[string]int)
	ranking := []BarberRanking{}

	for i := range schedules {
		sch := &schedules[i]

		pos, ok := index[sch.BarberID]
		if !ok {
			pos = len(ranking)
			index[sch.BarberID] = pos
			ranking = append(ranking, BarberRanking{
				BarberID:   sch.BarberID,
				BarberName: sch.Barber.User.Name,
			})
		}

		if sch.Status != string(domain.StatusCompleted) {
			continue
		}

		ranking[pos].CompletedSchedules++
		for _, row := range sch.Services {
			ranking[pos].Revenue += row.Price
		}
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Revenue > ranking[b].Revenue
	})

	return capRanking(ranking, 5)
}

func capRanking[T any](ranking []T, max int) []T {
	if len(ranking) > max {
		return ranking[:max]
	}
	return ranking
}

// ======================================================
// CACHE (melhor esforço: falha vira fallback para o banco)
// ======================================================

func cacheGet[T any](uc *ReportUseCase, ctx context.Context, key string) *T {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			uc.log.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		uc.log.Warn("report cache decode failed", zap.String("key", key), zap.Error(err))
		return nil
	}

	return &out
}

func (uc *ReportUseCase) cachePut(ctx context.Context, key string, report any) {
	if uc.cache == nil {
		return
	}

	b, err := json.Marshal(report)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, string(b), cacheTTL); err != nil {
		uc.log.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
