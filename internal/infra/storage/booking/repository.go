package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	"github.com/aldarwish/Studio-BookingService/pkg/dbmetrics"
	"github.com/aldarwish/Studio-BookingService/pkg/psqlbuilder"
)

// Колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"client_name",
	"client_phone",
	"session_type",
	"booking_date",
	"start_time",
	"end_time",
	"exclusivity",
	"status",
	"conflict_details",
	"notes",
	"total_amount",
	"paid_amount",
	"dedup_key",
	"version",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями студии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование (version = 1)
// Ключ идемпотентности защищен уникальным индексом: повторная вставка
// с тем же dedup_key возвращает ErrDuplicateDedupKey, без второй строки
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_name",
			"client_phone",
			"session_type",
			"booking_date",
			"start_time",
			"end_time",
			"exclusivity",
			"status",
			"conflict_details",
			"notes",
			"total_amount",
			"paid_amount",
			"dedup_key",
		).
		Values(
			booking.ClientName,
			booking.ClientPhone,
			booking.SessionType,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.Exclusivity,
			booking.Status,
			booking.ConflictDetails,
			booking.Notes,
			booking.TotalAmount,
			booking.PaidAmount,
			booking.DedupKey,
		).
		Suffix("ON CONFLICT (dedup_key) DO NOTHING RETURNING id, version, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.Version,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		// ON CONFLICT DO NOTHING не вернул строку - такой dedup_key уже есть
		return nil, ErrDuplicateDedupKey
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByDedupKey получает бронирование по ключу идемпотентности
func (r *Repository) GetByDedupKey(ctx context.Context, dedupKey string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"dedup_key": dedupKey})
}

// GetForDate возвращает все неотмененные бронирования на дату (индекс доступности)
// excludeID исключает редактируемое бронирование из выборки
// Внутри транзакции строки блокируются (FOR UPDATE) - это закрывает гонку
// двух одновременных submit-ов на пересекающиеся интервалы
func (r *Repository) GetForDate(ctx context.Context, date time.Time, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetVersion возвращает текущую версию строки бронирования
func (r *Repository) GetVersion(ctx context.Context, id int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("version").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetVersion - build select query: %v", ErrBuildQuery, err)
	}

	var version int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, ErrBookingNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetVersion - scan version: %v", ErrScanRow, err)
	}

	return version, nil
}

// ConditionalUpdate атомарный compare-and-write: запись проходит только если
// версия строки совпадает с expectedVersion, иначе ErrStaleVersion
// Проверка версии и запись выполняются одним UPDATE - второго окна гонки нет
func (r *Repository) ConditionalUpdate(ctx context.Context, id, expectedVersion int64, upd *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.updateFieldsBuilder(upd).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"version": expectedVersion}).
		Suffix("RETURNING " + columnList()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ConditionalUpdate - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		// Строка есть, но версия ушла вперед - либо бронирования больше нет
		if _, verr := r.GetVersion(ctx, id); verr != nil {
			return nil, verr
		}
		return nil, ErrStaleVersion
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ConditionalUpdate - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// Overwrite перезаписывает редактируемые поля бронирования целиком, без
// проверки версии (используется сервисом разрешения конфликтов при Accept)
func (r *Repository) Overwrite(ctx context.Context, id int64, upd *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.updateFieldsBuilder(upd).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Overwrite - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Overwrite - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// UpdateStatus переводит бронирование в новый статус (решение менеджера по inquiry)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ApprovalStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// updateFieldsBuilder собирает UPDATE с полным набором редактируемых полей
// Снимок выигрывает целиком: частичного слияния полей нет
func (r *Repository) updateFieldsBuilder(upd *domain.Booking) squirrel.UpdateBuilder {
	return psqlbuilder.Update("bookings").
		Set("client_name", upd.ClientName).
		Set("client_phone", upd.ClientPhone).
		Set("session_type", upd.SessionType).
		Set("booking_date", upd.BookingDate).
		Set("start_time", upd.StartTime).
		Set("end_time", upd.EndTime).
		Set("exclusivity", upd.Exclusivity).
		Set("notes", upd.Notes).
		Set("total_amount", upd.TotalAmount).
		Set("paid_amount", upd.PaidAmount).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()"))
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ClientName,
		&booking.ClientPhone,
		&booking.SessionType,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Exclusivity,
		&booking.Status,
		&booking.ConflictDetails,
		&booking.Notes,
		&booking.TotalAmount,
		&booking.PaidAmount,
		&booking.DedupKey,
		&booking.Version,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// columnList возвращает список колонок для RETURNING
func columnList() string {
	list := bookingColumns[0]
	for _, c := range bookingColumns[1:] {
		list += ", " + c
	}
	return list
}
