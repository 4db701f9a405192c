package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestRun_EmptyDSN(t *testing.T) {
	if err := Run("", "up"); err == nil {
		t.Fatal("Run with empty DSN should return error")
	}
}

func TestRun_InvalidDirection(t *testing.T) {
	for _, direction := range []string{"", "sideways", "UP", "Down"} {
		t.Run(direction, func(t *testing.T) {
			err := Run("postgres://localhost/test", direction)
			if err == nil {
				t.Fatalf("Run with direction %q should return error", direction)
			}
			if !strings.Contains(err.Error(), "direction") {
				t.Errorf("error should mention direction, got %q", err.Error())
			}
		})
	}
}

func TestFS_HasPairedMigrations(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	downs, err := fs.Glob(FS, "*.down.sql")
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(ups) == 0 {
		t.Fatal("expected at least one up migration")
	}
	if len(ups) != len(downs) {
		t.Errorf("expected paired migrations, got %d up and %d down", len(ups), len(downs))
	}
}
