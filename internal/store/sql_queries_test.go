package store

import (
	"context"
	"strings"
	"testing"
)

func TestBuildListActionsQuery_ByUserOnly(t *testing.T) {
	query, args, err := buildListActionsQuery(context.Background(), 42, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "FROM actions") {
		t.Errorf("expected query to select from actions, got: %s", query)
	}
	if !strings.Contains(query, "user_id = $1") {
		t.Errorf("expected user filter with dollar placeholder, got: %s", query)
	}
	if !strings.Contains(query, "ORDER BY created_at, id") {
		t.Errorf("expected stable creation ordering, got: %s", query)
	}
	if strings.Contains(query, "IN (") {
		t.Errorf("expected no IN clause without ids, got: %s", query)
	}

	if len(args) != 1 || args[0] != int64(42) {
		t.Errorf("expected args [42], got: %v", args)
	}
}

func TestBuildListActionsQuery_WithIDs(t *testing.T) {
	query, args, err := buildListActionsQuery(context.Background(), 42, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "id IN ($2,$3,$4)") {
		t.Errorf("expected IN clause with dollar placeholders, got: %s", query)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got: %v", args)
	}
	if args[0] != int64(42) || args[1] != int64(1) || args[3] != int64(3) {
		t.Errorf("unexpected arg values: %v", args)
	}
}
