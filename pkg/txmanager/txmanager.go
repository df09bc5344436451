package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-CoachScheduling/pkg/dbmetrics"
)

// SQLSTATE 40001: could not serialize access due to concurrent update
const serializationFailureCode = "40001"

var (
	// ErrBeginTx возвращается, если не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, если не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerializationFailure возвращается, когда PostgreSQL откатил сериализуемую транзакцию
	// из-за конкурентного изменения. Операцию можно повторить.
	ErrSerializationFailure = errors.New("txmanager: serialization failure")
)

// Beginner умеет начинать транзакции (*dbmetrics.DB)
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Manager менеджер транзакций. Транзакция передаётся в репозитории через контекст.
type Manager struct {
	db Beginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db Beginner) *Manager {
	return &Manager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (READ COMMITTED)
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в транзакции с уровнем SERIALIZABLE
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в транзакции только для чтения
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенный вызов переиспользует уже открытую транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		if IsSerializationFailure(err) {
			return fmt.Errorf("%w: %w", ErrSerializationFailure, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if IsSerializationFailure(err) {
			return fmt.Errorf("%w: %v", ErrSerializationFailure, err)
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// IsSerializationFailure возвращает true для ошибок сериализации PostgreSQL (SQLSTATE 40001)
func IsSerializationFailure(err error) bool {
	if errors.Is(err, ErrSerializationFailure) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}
	return false
}
