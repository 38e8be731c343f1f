// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madi Zhakenov

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING id, email, password_hash, name, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, name, created_at
    FROM users
    WHERE email = $1;`

	createAction = `INSERT INTO actions (user_id, title, description, target_count, current_count, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, title, description, target_count, current_count, completed, created_at, updated_at;`

	getAction = `SELECT id, user_id, title, description, target_count, current_count, completed, created_at, updated_at
		FROM actions
		WHERE id = $1 AND user_id = $2;`

	getActionForUpdate = `SELECT id, user_id, title, description, target_count, current_count, completed, created_at, updated_at
		FROM actions
		WHERE id = $1 AND user_id = $2
		FOR UPDATE;`

	updateActionRow = `UPDATE actions SET
			title         = $1,
			description   = $2,
			target_count  = $3,
			current_count = $4,
			completed     = $5,
			updated_at    = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, title, description, target_count, current_count, completed, created_at, updated_at;`

	deleteAction = `DELETE FROM actions
		WHERE id = $1 AND user_id = $2;`

	insertProgress = `INSERT INTO progress (action_id, count)
		VALUES ($1, $2)
		RETURNING id, action_id, count, created_at;`

	updateActionProgress = `UPDATE actions SET
			current_count = $1,
			completed     = $2,
			updated_at    = NOW()
		WHERE id = $3
		RETURNING id, user_id, title, description, target_count, current_count, completed, created_at, updated_at;`
)

// buildListActionsQuery constructs the filtered SELECT used to list a user's
// actions. Filtering is always applied by user id; when ids is non-empty an
// additional IN-clause narrows the result to those identifiers only.
func buildListActionsQuery(_ context.Context, userID int64, ids []int64) (string, []any, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "user_id", "title", "description", "target_count", "current_count", "completed", "created_at", "updated_at").
		From("actions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id")

	if len(ids) > 0 {
		builder = builder.Where(sq.Eq{"id": ids})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}
