package users

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

func TestMemoryRepository_Create_AssignsIncreasingIDs(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	u1, err := r.Create(ctx, &User{Email: "a@a.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	u2, err := r.Create(ctx, &User{Email: "b@b.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if u2.ID <= u1.ID {
		t.Fatalf("ids must be strictly increasing: %d then %d", u1.ID, u2.ID)
	}
}

func TestMemoryRepository_Create_DuplicateEmail(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, &User{Email: "a@a.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err := r.Create(ctx, &User{Email: "a@a.com", PasswordHash: "h2"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}

	// the first record must be untouched
	u, err := r.GetUserByEmail(ctx, "a@a.com")
	if err != nil {
		t.Fatalf("GetUserByEmail error: %v", err)
	}
	if u.PasswordHash != "h" {
		t.Fatalf("stored hash changed on failed duplicate create: %q", u.PasswordHash)
	}
}

func TestMemoryRepository_GetUserByEmail_CaseSensitive(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, &User{Email: "Alice@a.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := r.GetUserByEmail(ctx, "alice@a.com"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("lookup must be case-sensitive, got %v", err)
	}
	if _, err := r.GetUserByEmail(ctx, "Alice@a.com"); err != nil {
		t.Fatalf("exact match lookup failed: %v", err)
	}
}

func TestMemoryRepository_GetUserByEmail_NotFound(t *testing.T) {
	r := NewMemoryRepository()

	_, err := r.GetUserByEmail(context.Background(), "ghost@a.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
