// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	slotsTable      = "slots"
	slotsName       = "name"
	slotsValue      = "value"
	slotsUpdatedAt  = "updated_at"
	upsertSlotClash = "ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectSlotQuery(slot string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Select(slotsValue).
		From(slotsTable).
		Where(sq.Eq{slotsName: slot}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSlotQuery(slot, value string, now time.Time) (string, []any, error) {
	query, args, err := sqlBuilder.
		Insert(slotsTable).
		Columns(slotsName, slotsValue, slotsUpdatedAt).
		Values(slot, value, now).
		Suffix(upsertSlotClash).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteSlotsQuery renders one DELETE for all slots, so a multi-slot
// delete is a single statement.
func buildDeleteSlotsQuery(slots ...string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Delete(slotsTable).
		Where(sq.Eq{slotsName: slots}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
