package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий для чтения блокировок барбера (таблица bloqueos)
// Блокировки создает CRUD-сервис барберов, здесь они читаются для расчета занятости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarberOverlappingRange получает блокировки барбера, пересекающие период
// [from, to] по датам (обе границы включительно).
// Блок пересекает период, если fecha_inicio <= to И fecha_fin >= from
func (r *Repository) GetByBarberOverlappingRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barbero_id",
		"fecha_inicio",
		"fecha_fin",
		"hora_inicio",
		"hora_fin",
		"motivo",
		"created_at",
	).
		From("bloqueos").
		Where(squirrel.Eq{"barbero_id": barberID}).
		Where(squirrel.LtOrEq{"fecha_inicio": to}).
		Where(squirrel.GtOrEq{"fecha_fin": from}).
		OrderBy("fecha_inicio ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberOverlappingRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberOverlappingRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.Block, 0)

	for rows.Next() {
		var b domain.Block
		var startTime, endTime sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.BarberID,
			&b.StartDate,
			&b.EndDate,
			&startTime,
			&endTime,
			&b.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBarberOverlappingRange - scan block: %v", ErrScanRow, err)
		}

		// NULL-время остается nil-указателем: это признак полнодневного блока
		if startTime.Valid && startTime.String != "" {
			ts := toTimeString(startTime.String)
			b.StartTime = &ts
		}
		if endTime.Valid && endTime.String != "" {
			ts := toTimeString(endTime.String)
			b.EndTime = &ts
		}
		b.CreatedAt = createdAt.Time

		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarberOverlappingRange - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// toTimeString усекает значение TIME-колонки ("10:00:00") до "HH:MM"
func toTimeString(s string) types.TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return types.TimeString(s)
}
