package storage

import (
	"context"
	"errors"
	"testing"
)

func TestUserRepo_InsertAndFind(t *testing.T) {
	repo := NewUserRepo(newTestDB(t), DriverSQLite)
	ctx := context.Background()

	user := &User{FullName: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if user.ID == "" || user.CreatedAt.IsZero() {
		t.Fatalf("Insert() did not assign id/created_at: %+v", user)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if byID.Email != "alice@example.com" || byID.PasswordHash != "hash" {
		t.Errorf("FindByID() = %+v", byID)
	}

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("FindByEmail() id = %q, want %q", byEmail.ID, user.ID)
	}

	if _, err := repo.FindByEmail(ctx, "Alice@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByEmail() is case-sensitive, error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() missing error = %v, want ErrNotFound", err)
	}
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	repo := NewUserRepo(newTestDB(t), DriverSQLite)
	ctx := context.Background()

	if err := repo.Insert(ctx, &User{Email: "a@example.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	err := repo.Insert(ctx, &User{Email: "a@example.com", PasswordHash: "h2"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Insert() duplicate error = %v, want ErrDuplicate", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 1 {
		t.Errorf("List() len = %d, want 1", len(users))
	}
}
