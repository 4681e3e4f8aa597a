// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/items-api/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	itemsTable = "items"

	colID      = "id"
	colName    = "name"
	colDetails = "details"

	pingQuery = "SELECT 1 + 1"
)

var itemColumns = []string{colID, colName, colDetails}

// UUIDs are bound as strings: squirrel expands array values such as
// uuid.UUID into IN lists.

// itemQueries builds item statements for one placeholder dialect.
type itemQueries struct {
	builder sq.StatementBuilderType
}

func (q itemQueries) selectAll() (string, []any, error) {
	return q.wrap(q.builder.Select(itemColumns...).From(itemsTable).ToSql())
}

func (q itemQueries) selectByName(name string) (string, []any, error) {
	return q.wrap(q.builder.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{colName: name}).
		ToSql())
}

func (q itemQueries) selectByID(id uuid.UUID) (string, []any, error) {
	return q.wrap(q.builder.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{colID: id.String()}).
		ToSql())
}

func (q itemQueries) insert(item models.Item) (string, []any, error) {
	return q.wrap(q.builder.Insert(itemsTable).
		Columns(itemColumns...).
		Values(item.ID.String(), item.Name, item.Details).
		ToSql())
}

// update sets only the non-nil fields of u. The caller must check
// u.HasChanges first; squirrel refuses an UPDATE without SET clauses.
func (q itemQueries) update(u models.ItemUpdate) (string, []any, error) {
	b := q.builder.Update(itemsTable)

	if u.Name != nil {
		b = b.Set(colName, *u.Name)
	}
	if u.Details != nil {
		b = b.Set(colDetails, *u.Details)
	}

	return q.wrap(b.Where(sq.Eq{colID: u.ID.String()}).ToSql())
}

func (q itemQueries) deleteByName(name string) (string, []any, error) {
	return q.wrap(q.builder.Delete(itemsTable).Where(sq.Eq{colName: name}).ToSql())
}

func (q itemQueries) wrap(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
