package db

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrationsSortsByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"002_add_beds.sql": {Data: []byte("CREATE TABLE bed ();")},
		"001_init.sql":     {Data: []byte("CREATE TABLE patient ();")},
		"010_indexes.sql":  {Data: []byte("CREATE INDEX i ON patient (id);")},
		"README.md":        {Data: []byte("not a migration")},
	}

	m := NewMigrator(nil)
	if err := m.LoadMigrations(fsys); err != nil {
		t.Fatalf("LoadMigrations() error = %v", err)
	}

	if len(m.migrations) != 3 {
		t.Fatalf("loaded %d migrations, want 3", len(m.migrations))
	}
	wantVersions := []int{1, 2, 10}
	for i, want := range wantVersions {
		if m.migrations[i].Version != want {
			t.Errorf("migration[%d].Version = %d, want %d", i, m.migrations[i].Version, want)
		}
	}
	if m.migrations[0].Name != "init" {
		t.Errorf("migration[0].Name = %q, want init", m.migrations[0].Name)
	}
}

func TestLoadMigrationsRejectsBadNames(t *testing.T) {
	m := NewMigrator(nil)

	if err := m.LoadMigrations(fstest.MapFS{
		"init.sql": {Data: []byte("SELECT 1;")},
	}); err == nil {
		t.Error("expected error for file without version prefix")
	}

	if err := m.LoadMigrations(fstest.MapFS{
		"abc_init.sql": {Data: []byte("SELECT 1;")},
	}); err == nil {
		t.Error("expected error for non-numeric version")
	}
}

func TestLoadMigrationsRejectsDuplicateVersions(t *testing.T) {
	m := NewMigrator(nil)
	err := m.LoadMigrations(fstest.MapFS{
		"001_init.sql":  {Data: []byte("SELECT 1;")},
		"001_other.sql": {Data: []byte("SELECT 2;")},
	})
	if err == nil {
		t.Error("expected error for duplicate versions")
	}
}
