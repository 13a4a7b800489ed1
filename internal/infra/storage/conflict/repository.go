package conflict

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	"github.com/aldarwish/Studio-BookingService/pkg/dbmetrics"
	"github.com/aldarwish/Studio-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var conflictColumns = []string{
	"id",
	"booking_id",
	"proposed_data",
	"proposed_by_name",
	"proposed_by_rank",
	"status",
	"created_at",
	"resolved_by",
	"resolved_at",
}

// Repository репозиторий записей о конфликтах редактирования
// Статус записи меняется только через MarkResolved - его вызывает
// исключительно сервис разрешения конфликтов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфликтов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись о конфликте в статусе pending
func (r *Repository) Create(ctx context.Context, record *domain.ConflictRecord) (*domain.ConflictRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	proposedData, err := json.Marshal(record.ProposedData)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal proposed data: %v", ErrBuildQuery, err)
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.Status = domain.ConflictPending

	query, args, err := psqlbuilder.Insert("booking_conflicts").
		Columns(
			"id",
			"booking_id",
			"proposed_data",
			"proposed_by_name",
			"proposed_by_rank",
			"status",
		).
		Values(
			record.ID,
			record.BookingID,
			proposedData,
			record.ProposedBy.Name,
			record.ProposedBy.Rank,
			record.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return record, nil
}

// GetByID получает запись о конфликте по ID
// Внутри транзакции строка блокируется (FOR UPDATE) - одновременные resolve
// одного конфликта сериализуются на этой блокировке
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ConflictRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(conflictColumns...).
		From("booking_conflicts").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	record, err := r.scanRecord(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConflictNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan record: %v", ErrScanRow, err)
	}

	return record, nil
}

// ListPending возвращает все нерешенные конфликты, старые первыми
func (r *Repository) ListPending(ctx context.Context) ([]*domain.ConflictRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(conflictColumns...).
		From("booking_conflicts").
		Where(squirrel.Eq{"status": domain.ConflictPending}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.ConflictRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPending - scan row: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPending - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// CountPending возвращает количество нерешенных конфликтов
func (r *Repository) CountPending(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("booking_conflicts").
		Where(squirrel.Eq{"status": domain.ConflictPending}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountPending - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountPending - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// MarkResolved переводит pending-запись в терминальный статус accepted/rejected
// Условие status = pending в WHERE делает переход одноразовым: повторный вызов
// вернет ErrAlreadyResolved
func (r *Repository) MarkResolved(ctx context.Context, id uuid.UUID, status domain.ConflictStatus, resolvedBy string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_conflicts").
		Set("status", status).
		Set("resolved_by", resolvedBy).
		Set("resolved_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.ConflictPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkResolved - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkResolved - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkResolved - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyResolved
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanRecord(row rowScanner) (*domain.ConflictRecord, error) {
	var record domain.ConflictRecord
	var proposedData []byte

	err := row.Scan(
		&record.ID,
		&record.BookingID,
		&proposedData,
		&record.ProposedBy.Name,
		&record.ProposedBy.Rank,
		&record.Status,
		&record.CreatedAt,
		&record.ResolvedBy,
		&record.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(proposedData, &record.ProposedData); err != nil {
		return nil, fmt.Errorf("unmarshal proposed data: %v", err)
	}

	return &record, nil
}
