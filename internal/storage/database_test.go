package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

// newTestDB opens a migrated SQLite database under t.TempDir().
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(context.Background(), db, DriverSQLite); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		driver  string
		dsn     string
		wantErr bool
	}{
		{
			name:   "valid path",
			driver: DriverSQLite,
			dsn:    filepath.Join(tmpDir, "test.db"),
		},
		{
			name:    "invalid path",
			driver:  DriverSQLite,
			dsn:     "/invalid/path/to/db.db",
			wantErr: true,
		},
		{
			name:    "unsupported driver",
			driver:  "mysql",
			dsn:     "whatever",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Open(tt.driver, tt.dsn)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Open() expected error, got nil")
				}
				if db != nil {
					_ = db.Close()
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			_ = db.Close()
		})
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	if err := Migrate(context.Background(), db, DriverSQLite); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	for _, table := range []string{"users", "notes"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}
}

func TestOpen_SQLiteLowerIsUnicodeOnEveryConnection(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Hold two connections at once so the pool has to dial a second one.
	first, err := db.Conn(ctx)
	if err != nil {
		t.Fatalf("Conn() error = %v", err)
	}
	defer first.Close()
	second, err := db.Conn(ctx)
	if err != nil {
		t.Fatalf("Conn() error = %v", err)
	}
	defer second.Close()

	for i, conn := range []*sql.Conn{first, second} {
		var got string
		if err := conn.QueryRowContext(ctx, "SELECT lower('ÉCOLE Ünïcode')").Scan(&got); err != nil {
			t.Fatalf("conn %d: lower() error = %v", i, err)
		}
		if got != "école ünïcode" {
			t.Errorf("conn %d: lower() = %q, want %q", i, got, "école ünïcode")
		}
	}
}

func TestRunMigrations_UnsupportedDriver(t *testing.T) {
	db := newTestDB(t)
	if err := RunMigrations(context.Background(), db, "mysql", "up"); err == nil {
		t.Error("RunMigrations() with unsupported driver should fail")
	}
}

func TestRebind(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		query  string
		want   string
	}{
		{
			name:   "sqlite untouched",
			driver: DriverSQLite,
			query:  "SELECT * FROM notes WHERE id = ? AND owner_id = ?",
			want:   "SELECT * FROM notes WHERE id = ? AND owner_id = ?",
		},
		{
			name:   "postgres numbered",
			driver: DriverPostgres,
			query:  "SELECT * FROM notes WHERE id = ? AND owner_id = ?",
			want:   "SELECT * FROM notes WHERE id = $1 AND owner_id = $2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rebind(tt.driver, tt.query); got != tt.want {
				t.Errorf("rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}
