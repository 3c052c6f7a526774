package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_user_store.go -package=mocks notes-api/internal/storage UserStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// UserStore defines the interface for account storage operations.
type UserStore interface {
	// Insert persists a new user, assigning ID and CreatedAt.
	// Returns ErrDuplicate when the email is already taken.
	Insert(ctx context.Context, user *User) error
	// FindByID returns the user with id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*User, error)
	// FindByEmail returns the user with the exact email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// List returns every user, oldest first.
	List(ctx context.Context) ([]User, error)
}

const userColumns = "id, full_name, email, password_hash, created_at"

// UserRepo is the relational UserStore.
type UserRepo struct {
	db     *sql.DB
	driver string
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB, driver string) *UserRepo {
	return &UserRepo{db: db, driver: driver}
}

// Insert persists a new user.
func (r *UserRepo) Insert(ctx context.Context, user *User) error {
	id := uuid.New().String()
	ts := now()

	_, err := r.db.ExecContext(ctx, rebind(r.driver,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?)`),
		id, user.FullName, user.Email, user.PasswordHash, ts,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID = id
	user.CreatedAt = ts
	return nil
}

// FindByID gets a user by id.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail gets a user by email. The match is case-sensitive.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepo) findOne(ctx context.Context, cond string, arg any) (*User, error) {
	var user User
	err := r.db.QueryRowContext(ctx, rebind(r.driver,
		"SELECT "+userColumns+" FROM users WHERE "+cond), arg,
	).Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// List returns all users.
func (r *UserRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	users := make([]User, 0)
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
