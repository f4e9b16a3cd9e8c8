package cleaner

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий уборщиков: расписание, исключения и предвычисленная доступность
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уборщиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает уборщика с недельным расписанием и исключениями.
// Два запроса; для согласованного снимка вызывайте внутри транзакции (txmanager.DoReadOnly).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Cleaner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"weekly_schedule",
		"next_available_2h",
		"next_available_6h",
		"availability_updated_at",
		"created_at",
		"updated_at",
	).
		From("cleaners").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cleaner              domain.Cleaner
		rawSchedule          []byte
		next2h, next6h       sql.NullTime
		availabilityUpdated  sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cleaner.ID,
		&cleaner.Name,
		&rawSchedule,
		&next2h,
		&next6h,
		&availabilityUpdated,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCleanerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan cleaner: %v", ErrScanRow, err)
	}

	schedule, err := DecodeSchedule(rawSchedule)
	if err != nil {
		return nil, fmt.Errorf("%w: cleaner id=%d: %v", ErrDecodeSchedule, id, err)
	}
	cleaner.Schedule = schedule

	cleaner.NextAvailability = domain.NextAvailability{
		Standard:  nullTimePtr(next2h),
		Deep:      nullTimePtr(next6h),
		UpdatedAt: nullTimePtr(availabilityUpdated),
	}
	cleaner.CreatedAt = createdAt.Time
	cleaner.UpdatedAt = updatedAt.Time

	exceptions, err := r.getExceptions(ctx, id)
	if err != nil {
		return nil, err
	}
	cleaner.Exceptions = exceptions

	return &cleaner, nil
}

// getExceptions получает разовые исключения уборщика
func (r *Repository) getExceptions(ctx context.Context, cleanerID int64) ([]domain.Exception, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("exception_date", "start_time", "end_time").
		From("cleaner_exceptions").
		Where(squirrel.Eq{"cleaner_id": cleanerID}).
		OrderBy("exception_date ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]domain.Exception, 0)
	for rows.Next() {
		var (
			exc  domain.Exception
			date time.Time
		)
		if err := rows.Scan(&date, &exc.Start, &exc.End); err != nil {
			return nil, fmt.Errorf("%w: getExceptions - scan row: %v", ErrScanRow, err)
		}
		exc.Date = date.Format(domain.DateFormat)
		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// ListIDs возвращает ID всех уборщиков (для периодического пересчета)
func (r *Repository) ListIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("cleaners").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListIDs - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// UpdateNextAvailable перезаписывает оба предвычисленных поля.
// Повторный вызов с теми же значениями ничего не накапливает.
func (r *Repository) UpdateNextAvailable(ctx context.Context, cleanerID int64, values domain.NextAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cleaners").
		Set(domain.TierStandard.Column(), values.Standard).
		Set(domain.TierDeep.Column(), values.Deep).
		Set("availability_updated_at", values.UpdatedAt).
		Where(squirrel.Eq{"id": cleanerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateNextAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNextAvailable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateNextAvailable - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCleanerNotFound
	}

	return nil
}

// ListByNextAvailable возвращает уборщиков, доступных по тарифу строго после after,
// отсортированных по ближайшей доступности
func (r *Repository) ListByNextAvailable(ctx context.Context, tier domain.ServiceTier, after time.Time, limit int) ([]domain.RankedCleaner, error) {
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, tier)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)
	column := tier.Column()

	query, args, err := psqlbuilder.Select("id", column).
		From("cleaners").
		Where(squirrel.Gt{column: after}).
		OrderBy(column+" ASC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByNextAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByNextAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranked := make([]domain.RankedCleaner, 0, limit)
	for rows.Next() {
		var rc domain.RankedCleaner
		if err := rows.Scan(&rc.CleanerID, &rc.NextAvailable); err != nil {
			return nil, fmt.Errorf("%w: ListByNextAvailable - scan row: %v", ErrScanRow, err)
		}
		ranked = append(ranked, rc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByNextAvailable - rows error: %v", ErrScanRow, err)
	}

	return ranked, nil
}

// DecodeSchedule разбирает JSONB недельного расписания.
// Ключи приводятся к нижнему регистру, неизвестные дни недели отбрасываются.
func DecodeSchedule(raw []byte) (domain.WeeklySchedule, error) {
	schedule := make(domain.WeeklySchedule)
	if len(raw) == 0 {
		return schedule, nil
	}

	var decoded map[string][]domain.TimeSlot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}

	for key, slots := range decoded {
		day := domain.Weekday(strings.ToLower(strings.TrimSpace(key)))
		if !day.IsValid() {
			continue
		}
		schedule[day] = append(schedule[day], slots...)
	}

	return schedule, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
