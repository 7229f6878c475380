package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/models"
	ucSchedule "github.com/barbershop/scheduler/internal/usecase/schedule"
)

// ======================================================
// MOCKS
// ======================================================

type MockScheduleStore struct {
	mock.Mock
}

func (m *MockScheduleStore) FindConflicting(ctx context.Context, barberID string, date time.Time) ([]models.Schedule, error) {
	args := m.Called(ctx, barberID, date)
	return args.Get(0).([]models.Schedule), args.Error(1)
}

func (m *MockScheduleStore) Create(ctx context.Context, sch *models.Schedule, services []models.Service) error {
	args := m.Called(ctx, sch, services)
	return args.Error(0)
}

func (m *MockScheduleStore) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Schedule), args.Error(1)
}

func (m *MockScheduleStore) Update(ctx context.Context, sch *models.Schedule) error {
	args := m.Called(ctx, sch)
	return args.Error(0)
}

func (m *MockScheduleStore) FindByDate(ctx context.Context, date time.Time) ([]models.Schedule, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]models.Schedule), args.Error(1)
}

func (m *MockScheduleStore) FindByPeriod(ctx context.Context, start, end time.Time) ([]models.Schedule, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]models.Schedule), args.Error(1)
}

func (m *MockScheduleStore) FindByCustomer(ctx context.Context, customerID string) ([]models.Schedule, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]models.Schedule), args.Error(1)
}

func (m *MockScheduleStore) FindByBarber(ctx context.Context, barberID string) ([]models.Schedule, error) {
	args := m.Called(ctx, barberID)
	return args.Get(0).([]models.Schedule), args.Error(1)
}

func (m *MockScheduleStore) FindAll(ctx context.Context) ([]models.Schedule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Schedule), args.Error(1)
}

type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

type MockServiceStore struct {
	mock.Mock
}

func (m *MockServiceStore) FindByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Service), args.Error(1)
}

// ======================================================
// HELPERS
// ======================================================

// bookableDate devolve uma data futura válida (fora do feriado e além da
// antecedência mínima), estável para qualquer dia de execução.
func bookableDate(daysAhead int) time.Time {
	date := time.Now().AddDate(0, 0, daysAhead)
	for domain.IsHoliday(date) {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func adultCustomer(id string) *models.Customer {
	return &models.Customer{
		ID:         id,
		UserID:     uuid.NewString(),
		BirthDate:  time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		HasAllergy: false,
	}
}

func newCreateUC(
	schedules *MockScheduleStore,
	customers *MockCustomerStore,
	services *MockServiceStore,
) *ucSchedule.CreateSchedule {
	return ucSchedule.NewCreateSchedule(schedules, customers, services, nil, zap.NewNop())
}

// ======================================================
// TESTS
// ======================================================

// TestCreateSchedule_HolidayRejected: feriado rejeita antes de qualquer
// consulta ao repositório.
func TestCreateSchedule_HolidayRejected(t *testing.T) {
	schedules := new(MockScheduleStore)
	customers := new(MockCustomerStore)
	services := new(MockServiceStore)

	uc := newCreateUC(schedules, customers, services)

	holiday := time.Date(time.Now().Year()+1, time.December, 25, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), ucSchedule.CreateScheduleInput{
		CustomerID: uuid.NewString(),
		BarberID:   uuid.NewString(),
		Date:       holiday,
		ServiceIDs: []string{uuid.NewString()},
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeHoliday))
	schedules.AssertNotCalled(t, "FindConflicting")
	schedules.AssertNotCalled(t, "Create")
}

// TestCreateSchedule_LeadTimeRejected: antecedência insuficiente rejeita
// independente de conflito ou elegibilidade.
func TestCreateSchedule_LeadTimeRejected(t *testing.T) {
	schedules := new(MockScheduleStore)
	customers := new(MockCustomerStore)
	services := new(MockServiceStore)

	uc := newCreateUC(schedules, customers, services)

	_, err := uc.Execute(context.Background(), ucSchedule.CreateScheduleInput{
		CustomerID: uuid.NewString(),
		BarberID:   uuid.NewString(),
		Date:       bookableDate(3),
		ServiceIDs: []string{uuid.NewString()},
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeLeadTime))
	schedules.AssertNotCalled(t, "FindConflicting")
	schedules.AssertNotCalled(t, "Create")
}

// TestCreateSchedule_ConflictRejected: agendamento CONFIRMADO na janela
// bloqueia a reserva.
func TestCreateSchedule_ConflictRejected(t *testing.T) {
	schedules := new(MockScheduleStore)
	customers := new(MockCustomerStore)
	services := new(MockServiceStore)

	uc := newCreateUC(schedules, customers, services)

	barberID := uuid.NewString()
	date := bookableDate(10)

	schedules.On("FindConflicting", mock.Anything, barberID, date).
		Return([]models.Schedule{
			{ID: uuid.NewString(), BarberID: barberID, Status: string(domain.StatusConfirmed)},
		}, nil)

	_, err := uc.Execute(context.Background(), ucSchedule.CreateScheduleInput{
		CustomerID: uuid.NewString(),
		BarberID:   barberID,
		Date:       date,
		ServiceIDs: []string{uuid.NewString()},
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeTimeConflict))
	schedules.AssertNotCalled(t, "Create")
	schedules.AssertExpectations(t)
}

// TestCreateSchedule_CustomerNotFound: janela livre, mas o cliente não
// existe — o store devolve nil sem erro.
func TestCreateSchedule_CustomerNotFound(t *testing.T) {
	schedules := new(MockScheduleStore)
	customers := new(MockCustomerStore)
	services := new(MockServiceStore)

	uc := newCreateUC(schedules, customers, services)

	customerID := uuid.NewString()
	barberID := uuid.NewString()
	date := bookableDate(10)

	schedules.On("FindConflicting", mock.Anything, barberID, date).
		Return([]models.Schedule{}, nil)
	customers.On("FindByID", mock.Anything, customerID).Return(nil, nil)

	_, err := uc.Execute(context.Background(), ucSchedule.CreateScheduleInput{
		CustomerID: customerID,
		BarberID:   barberID,
		Date:       date,
		ServiceIDs: []string{uuid.NewString()},
	})

	ne, ok := httperr.AsNotFound(err)
	assert.True(t, ok)
	assert.Equal(t, httperr.CodeCustomerNotFound, ne.Code)
	schedules.AssertNotCalled(t, "Create")
}

// TestCreateSchedule_AllergyRejected: alergia rejeita mesmo com idade
// válida, antes da checagem de serviços.
func TestCreateSchedule_AllergyRejected(t *testing.T) {
	schedules := new(MockScheduleStore)
	customers := new(MockCustomerStore)
	services := new(MockServiceStore)

	uc := newCreateUC(schedules, customers, services)

	customerID := uuid.NewString()
	barberID := uuid.NewString()
	date := bookableDate(10)

	allergic := adultCustomer(customerID)
	allergic.HasAllergy = true

	schedules.On("FindConflicting", mock.Anything, barberID, date).
		Return([]models.Schedule{}, nil)
	customers.On("FindByID", mock.Anything, customerID).Return(allergic, nil)

	_, err := uc.Execute(context.Background(), ucSchedule.CreateScheduleInput{
		CustomerID: customerID,
		BarberID:   barberID,
		Date:       date,
		ServiceIDs: []string{uuid.NewString()},
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeCustomerAllergy))
	services.AssertNotCalled(t, "FindByIDs")
	schedules.AssertNotCalled(t, "Create")
}

func TestCreateSchedule_UnderAgeRejected(t *testing.T) {
	schedules := new(MockScheduleStore)
	customers := new(MockCustomerStore)
	services := new(MockServiceStore)

	uc := newCreateUC(schedules, customers, services)

	customerID := uuid.NewString()
	barberID := uuid.NewString()
	date := bookableDate(10)

	toddler := adultCustomer(customerID)
	toddler.BirthDate = time.Now().AddDate(-2, 0, 0)

	schedules.On("FindConflicting", mock.Anything, barberID, date).
		Return([]models.Schedule{}, nil)
	customers.On("FindByID", mock.Anything, customerID).Return(toddler, nil)

	_, err := uc.Execute(context.Background(), ucSchedule.CreateScheduleInput{
		CustomerID: customerID,
		BarberID:   barberID,
		Date:       date,
		ServiceIDs: []string{uuid.NewString()},
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeCustomerUnderAge))
	schedules.AssertNotCalled(t, "Create")
}

// TestCreateSchedule_ServiceCountMismatch: a checagem compara contagens,
// então ids inexistentes (ou duplicados) rejeitam.
func TestCreateSchedule_ServiceCountMismatch(t *testing.T) {
	schedules := new(MockScheduleStore)
	customers := new(MockCustomerStore)
	services := new(MockServiceStore)

	uc := newCreateUC(schedules, customers, services)

	customerID := uuid.NewString()
	barberID := uuid.NewString()
	date := bookableDate(10)

	ids := []string{uuid.NewString(), uuid.NewString()}

	schedules.On("FindConflicting", mock.Anything, barberID, date).
		Return([]models.Schedule{}, nil)
	customers.On("FindByID", mock.Anything, customerID).Return(adultCustomer(customerID), nil)
	services.On("FindByIDs", mock.Anything, ids).
		Return([]models.Service{{ID: ids[0], Name: "Corte", Type: "HAIRCUT", Price: 45.0}}, nil)

	_, err := uc.Execute(context.Background(), ucSchedule.CreateScheduleInput{
		CustomerID: customerID,
		BarberID:   barberID,
		Date:       date,
		ServiceIDs: ids,
	})

	ne, ok := httperr.AsNotFound(err)
	assert.True(t, ok)
	assert.Equal(t, httperr.CodeServiceNotFound, ne.Code)
	schedules.AssertNotCalled(t, "Create")
}

// TestCreateSchedule_Success: cliente elegível, data válida, sem conflito.
// O agendamento nasce PENDING e congela os preços CADASTRADOS dos serviços
// (não o preço de tabela do combo).
func TestCreateSchedule_Success(t *testing.T) {
	schedules := new(MockScheduleStore)
	customers := new(MockCustomerStore)
	services := new(MockServiceStore)

	uc := newCreateUC(schedules, customers, services)

	customerID := uuid.NewString()
	barberID := uuid.NewString()
	date := bookableDate(10)

	haircutID := uuid.NewString()
	beardID := uuid.NewString()
	ids := []string{haircutID, beardID}

	stored := []models.Service{
		{ID: haircutID, Name: "Corte degradê", Type: "HAIRCUT", Price: 40.0},
		{ID: beardID, Name: "Barba completa", Type: "BEARD", Price: 55.0},
	}

	schedules.On("FindConflicting", mock.Anything, barberID, date).
		Return([]models.Schedule{}, nil)
	customers.On("FindByID", mock.Anything, customerID).Return(adultCustomer(customerID), nil)
	services.On("FindByIDs", mock.Anything, ids).Return(stored, nil)

	schedules.On("Create", mock.Anything, mock.AnythingOfType("*models.Schedule"), stored).
		Run(func(args mock.Arguments) {
			sch := args.Get(1).(*models.Schedule)
			sch.ID = uuid.NewString()
			for _, s := range stored {
				sch.Services = append(sch.Services, models.ScheduleService{
					ScheduleID: sch.ID,
					ServiceID:  s.ID,
					Price:      s.Price,
				})
			}
		}).
		Return(nil)

	sch, err := uc.Execute(context.Background(), ucSchedule.CreateScheduleInput{
		CustomerID: customerID,
		BarberID:   barberID,
		Date:       date,
		ServiceIDs: ids,
	})

	assert.NoError(t, err)
	assert.NotNil(t, sch)
	assert.Equal(t, string(domain.StatusPending), sch.Status)
	assert.Equal(t, customerID, sch.CustomerID)
	assert.Equal(t, barberID, sch.BarberID)

	frozen := 0.0
	for _, row := range sch.Services {
		frozen += row.Price
	}
	// 40 + 55 = 95: preço congelado, não os 75.0 da cotação de combo
	assert.Equal(t, 95.0, frozen)

	schedules.AssertExpectations(t)
	customers.AssertExpectations(t)
	services.AssertExpectations(t)
}
