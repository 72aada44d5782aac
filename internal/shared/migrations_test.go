package shared

import (
	"testing"
)

func TestMigrations(t *testing.T) {
	t.Run("loadMigrations", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(migrations) == 0 {
			t.Fatal("expected at least one migration")
		}

		for _, m := range migrations {
			if m.Up == "" || m.Down == "" {
				t.Errorf("migration %d missing up or down script", m.Version)
			}
		}

		for i := 1; i < len(migrations); i++ {
			if migrations[i].Version <= migrations[i-1].Version {
				t.Error("expected migrations sorted by version")
			}
		}
	})

	t.Run("RunMigrations", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for _, table := range []string{"reports", "records", "reports_sequence", "records_sequence"} {
			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
			if err != nil {
				t.Errorf("expected table %s to exist: %v", table, err)
			}
		}

		t.Run("is idempotent", func(t *testing.T) {
			if err := RunMigrations(db); err != nil {
				t.Errorf("expected re-run to succeed, got %v", err)
			}
		})
	})

	t.Run("RollbackMigration", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("expected rollback to succeed, got %v", err)
		}

		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='reports'").Scan(&name)
		if err == nil {
			t.Error("expected reports table to be dropped")
		}

		t.Run("fails with nothing to roll back", func(t *testing.T) {
			if err := RollbackMigration(db); err == nil {
				t.Error("expected error with no applied migrations")
			}
		})
	})
}

func TestStripComments(t *testing.T) {
	input := "CREATE TABLE t ( -- comment\n  id TEXT -- inline\n)"
	result := stripComments(input)

	if result != "CREATE TABLE t (\nid TEXT\n)" {
		t.Errorf("unexpected result %q", result)
	}
}

func TestNewDatabase(t *testing.T) {
	t.Run("in-memory database", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			t.Errorf("expected reachable database, got %v", err)
		}
	})

	t.Run("ConfigureDatabase applies pool settings", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer db.Close()

		ConfigureDatabase(db, 5, 2)

		if db.Stats().MaxOpenConnections != 5 {
			t.Errorf("expected max open conns 5, got %d", db.Stats().MaxOpenConnections)
		}
	})
}
