package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/models"
	"github.com/google/uuid"
)

// itemRepository is the SQL implementation of [ItemRepository] over the
// "items" table. Statements are built for the pool's placeholder dialect and
// executed on the caller's [Session].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type itemRepository struct {
	queries            itemQueries
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] for the dialect of db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating item repository")
	return &itemRepository{
		queries:            itemQueries{builder: db.builder},
		errorClassificator: db.errorClassificator,
		logger:             logger,
	}
}

// List returns every item in table order. An empty table yields an empty,
// non-nil slice.
func (r *itemRepository) List(ctx context.Context, s Session) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectAll()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.List").Msg("failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 16)
	for rows.Next() {
		var item models.Item
		if scanErr := rows.Scan(&item.ID, &item.Name, &item.Details); scanErr != nil {
			log.Err(scanErr).Str("func", "*itemRepository.List").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*itemRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// FindByName returns the item called name or [ErrItemNotFound].
func (r *itemRepository) FindByName(ctx context.Context, s Session, name string) (models.Item, error) {
	query, args, err := r.queries.selectByName(name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.FindByName").Msg("failed to create query")
		return models.Item{}, err
	}

	return r.findOne(ctx, s, "*itemRepository.FindByName", query, args)
}

// FindByID returns the item with the given id or [ErrItemNotFound].
func (r *itemRepository) FindByID(ctx context.Context, s Session, id uuid.UUID) (models.Item, error) {
	query, args, err := r.queries.selectByID(id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.FindByID").Msg("failed to create query")
		return models.Item{}, err
	}

	return r.findOne(ctx, s, "*itemRepository.FindByID", query, args)
}

func (r *itemRepository) findOne(ctx context.Context, s Session, funcName, query string, args []any) (models.Item, error) {
	var item models.Item

	err := s.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Name, &item.Details)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Item{}, ErrItemNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to query item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// Create inserts item as given. A name collision yields
// [ErrItemAlreadyExists].
func (r *itemRepository) Create(ctx context.Context, s Session, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.insert(item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.Create").Msg("failed to create query")
		return models.Item{}, err
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		return models.Item{}, r.statementError(ctx, "*itemRepository.Create", err)
	}

	return item, nil
}

// Update writes the non-nil fields of update and returns the stored item.
// An update without fields only verifies that the item exists.
func (r *itemRepository) Update(ctx context.Context, s Session, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	if !update.HasChanges() {
		return r.FindByID(ctx, s, update.ID)
	}

	query, args, err := r.queries.update(update)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.Update").Msg("failed to create query")
		return models.Item{}, err
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Item{}, r.statementError(ctx, "*itemRepository.Update", err)
	}

	if err = expectAffected(result); err != nil {
		return models.Item{}, err
	}

	return r.FindByID(ctx, s, update.ID)
}

// DeleteByName removes the item called name or returns [ErrItemNotFound].
func (r *itemRepository) DeleteByName(ctx context.Context, s Session, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.deleteByName(name)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteByName").Msg("failed to create query")
		return err
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		return r.statementError(ctx, "*itemRepository.DeleteByName", err)
	}

	return expectAffected(result)
}

// Ping performs a trivial round trip through the session.
func (r *itemRepository) Ping(ctx context.Context, s Session) error {
	var two int
	if err := s.QueryRowContext(ctx, pingQuery).Scan(&two); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// statementError classifies a failed DML statement.
func (r *itemRepository) statementError(ctx context.Context, funcName string, err error) error {
	classification := r.errorClassificator.Classify(err)
	if classification == UniqueViolation {
		return ErrItemAlreadyExists
	}

	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Stringer("classification", classification).
		Msg("failed to execute statement")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}
