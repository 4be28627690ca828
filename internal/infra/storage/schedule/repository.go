package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения расписаний барберов и услуг
// Таблицы barberos/servicios/barbero_servicios ведет CRUD-сервис,
// здесь они используются только на чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBarberSchedule получает расписание активного барбера
// dias_trabajo возвращается сырой строкой - нормализацию делает резолвер
func (r *Repository) GetBarberSchedule(ctx context.Context, barberID int64) (*domain.BarberSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"nombre",
		"activo",
		"dias_trabajo",
		"hora_inicio",
		"hora_fin",
	).
		From("barberos").
		Where(squirrel.Eq{"id": barberID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberSchedule - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.BarberSchedule
	var workingDaysRaw sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.BarberID,
		&schedule.Name,
		&schedule.Active,
		&workingDaysRaw,
		&schedule.StartTime,
		&schedule.EndTime,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberSchedule - scan barber: %v", ErrScanRow, err)
	}

	// Неактивный барбер эквивалентен отсутствующему
	if !schedule.Active {
		return nil, ErrBarberNotFound
	}

	schedule.WorkingDaysRaw = workingDaysRaw.String

	return &schedule, nil
}

// GetService получает активную услугу по ID
func (r *Repository) GetService(ctx context.Context, serviceID int64) (*domain.BarberService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"nombre",
		"duracion_minutos",
		"precio",
		"activo",
	).
		From("servicios").
		Where(squirrel.Eq{"id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.BarberService

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.Name,
		&service.DurationMinutes,
		&service.Price,
		&service.Active,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	if !service.Active {
		return nil, ErrServiceNotFound
	}

	return &service, nil
}

// BarberOffersService проверяет по связующей таблице, что барбер оказывает услугу
func (r *Repository) BarberOffersService(ctx context.Context, barberID, serviceID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("barbero_servicios").
		Where(squirrel.Eq{"barbero_id": barberID, "servicio_id": serviceID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: BarberOffersService - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: BarberOffersService - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}
