package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/items-api/models"
	"github.com/google/uuid"
)

// Session is the unit of work a request runs its queries through. It is
// satisfied by *sql.Tx (and by *sql.DB for code that needs no transaction).
type Session interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SessionProvider runs fn inside a scoped session: commit when fn returns nil,
// rollback when it returns an error or panics.
type SessionProvider interface {
	WithSession(ctx context.Context, fn func(ctx context.Context, s Session) error) error
}

// ItemRepository persists items. Every method runs on the caller's session
// and never commits or rolls back on its own.
type ItemRepository interface {
	List(ctx context.Context, s Session) ([]models.Item, error)
	FindByName(ctx context.Context, s Session, name string) (models.Item, error)
	FindByID(ctx context.Context, s Session, id uuid.UUID) (models.Item, error)
	Create(ctx context.Context, s Session, item models.Item) (models.Item, error)
	Update(ctx context.Context, s Session, update models.ItemUpdate) (models.Item, error)
	DeleteByName(ctx context.Context, s Session, name string) error
	Ping(ctx context.Context, s Session) error
}

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
