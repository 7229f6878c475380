package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer.User").
		Preload("Barber.User").
		Preload("Services.Service")
}

// --------------------------------------------------
// Conflito
// --------------------------------------------------

// Apenas agendamentos CONFIRMADOS bloqueiam a janela; reservas PENDING são
// holds provisórios e podem se sobrepor.
func (r *ScheduleGormRepository) FindConflicting(
	ctx context.Context,
	barberID string,
	date time.Time,
) ([]models.Schedule, error) {

	windowEnd := date.Add(domain.ConflictWindow)

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status = ? AND date >= ? AND date < ?",
			barberID,
			string(domain.StatusConfirmed),
			date,
			windowEnd,
		).
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

// --------------------------------------------------
// Create (transacional)
// --------------------------------------------------

// Create grava o agendamento e as linhas de serviço como uma unidade: tudo
// visível junto ou nada. O preço congelado é o preço cadastrado do serviço
// no momento do commit. A janela de conflito é re-verificada dentro da
// transação com lock de linha para fechar a corrida entre duas reservas
// simultâneas do mesmo horário.
func (r *ScheduleGormRepository) Create(
	ctx context.Context,
	sch *models.Schedule,
	services []models.Service,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Schedule{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND status = ? AND date >= ? AND date < ?",
				sch.BarberID,
				string(domain.StatusConfirmed),
				sch.Date,
				sch.Date.Add(domain.ConflictWindow),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(
				httperr.CodeTimeConflict,
				"Já existe um agendamento confirmado para o horário solicitado.",
			)
		}

		if err := tx.Omit("Services").Create(sch).Error; err != nil {
			return err
		}

		for i := range services {
			row := models.ScheduleService{
				ScheduleID: sch.ID,
				ServiceID:  services[i].ID,
				Price:      services[i].Price,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			sch.Services = append(sch.Services, row)
		}

		return nil
	})
}

// --------------------------------------------------
// Leitura / atualização
// --------------------------------------------------

func (r *ScheduleGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Schedule, error) {

	var sch models.Schedule
	if err := withRelations(r.db.WithContext(ctx)).
		First(&sch, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &sch, nil
}

func (r *ScheduleGormRepository) Update(
	ctx context.Context,
	sch *models.Schedule,
) error {
	return r.db.WithContext(ctx).Omit("Services").Save(sch).Error
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *ScheduleGormRepository) FindByDate(
	ctx context.Context,
	date time.Time,
) ([]models.Schedule, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)

	return r.findWindow(ctx, start, end)
}

func (r *ScheduleGormRepository) FindByPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Schedule, error) {
	return r.findWindow(ctx, start, end)
}

func (r *ScheduleGormRepository) findWindow(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := withRelations(r.db.WithContext(ctx)).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *ScheduleGormRepository) FindByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := withRelations(r.db.WithContext(ctx)).
		Where("customer_id = ?", customerID).
		Order("date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *ScheduleGormRepository) FindByBarber(
	ctx context.Context,
	barberID string,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := withRelations(r.db.WithContext(ctx)).
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *ScheduleGormRepository) FindAll(
	ctx context.Context,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := withRelations(r.db.WithContext(ctx)).
		Order("date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

// Compile-time check
var _ domain.ScheduleStore = (*ScheduleGormRepository)(nil)
