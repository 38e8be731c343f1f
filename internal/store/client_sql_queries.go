// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madi Zhakenov

package store

const (
	clearActionSnapshot = `DELETE FROM action_snapshot;`

	insertSnapshotAction = `
		INSERT INTO action_snapshot (
			position,
			id,
			title,
			description,
			target_count,
			current_count,
			completed,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	getActionSnapshot = `
		SELECT
			id,
			title,
			description,
			target_count,
			current_count,
			completed,
			created_at,
			updated_at
		FROM action_snapshot
		ORDER BY position;`

	clearPendingMutations = `DELETE FROM pending_mutations;`

	insertPendingMutation = `
		INSERT INTO pending_mutations (position, kind, action)
		VALUES ($1, $2, $3);`

	getPendingMutations = `
		SELECT kind, action
		FROM pending_mutations
		ORDER BY position;`
)
