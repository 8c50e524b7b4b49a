package db

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/glebarez/sqlite"
	embeddedmigrations "github.com/terraincognita07/dojoaonde/migrations"
	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	database := openSQLiteForMigrationBootstrapTest(t, filepath.Join(t.TempDir(), "dojoaonde-clean.db"))

	assertDojosSchemaHasLaterRevisionColumns(t, database)
	assertAllEmbeddedMigrationsApplied(t, database)
}

func TestOpenSQLiteUpgradesEarlierRevisionSchema(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "dojoaonde-legacy.db")
	seedEarlierRevisionSchema(t, databasePath)

	database := openSQLiteForMigrationBootstrapTest(t, databasePath)

	assertDojosSchemaHasLaterRevisionColumns(t, database)
	assertAllEmbeddedMigrationsApplied(t, database)

	var migrated struct {
		Local     string  `gorm:"column:local"`
		Address   string  `gorm:"column:address"`
		City      string  `gorm:"column:city"`
		GmapsLink *string `gorm:"column:gmaps_link"`
	}
	if err := database.Table("dojos").
		Select("local", "address", "city", "gmaps_link").
		Where("local = ?", "Legacy venue").
		First(&migrated).Error; err != nil {
		t.Fatalf("load migrated dojo: %v", err)
	}
	if migrated.Address != "" || migrated.City != "" {
		t.Fatalf("expected empty address/city defaults, got %q/%q", migrated.Address, migrated.City)
	}
	if migrated.GmapsLink == nil || *migrated.GmapsLink != "https://maps.example.com/legacy" {
		t.Fatalf("expected legacy gmaps_link to survive, got %v", migrated.GmapsLink)
	}
}

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "dojoaonde-idempotent.db")

	firstOpen, err := OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	firstRecords := loadMigrationRecords(t, firstOpen)

	firstSQLDB, err := firstOpen.DB()
	if err != nil {
		t.Fatalf("first open sql db: %v", err)
	}
	if err := firstSQLDB.Close(); err != nil {
		t.Fatalf("close first sql db: %v", err)
	}

	secondOpen := openSQLiteForMigrationBootstrapTest(t, databasePath)
	secondRecords := loadMigrationRecords(t, secondOpen)

	if !reflect.DeepEqual(firstRecords, secondRecords) {
		t.Fatalf("expected migration records to remain unchanged between boots, before=%v after=%v", firstRecords, secondRecords)
	}
}

func TestOpenSQLiteCreatesCaseInsensitiveUserEmailUniqueIndex(t *testing.T) {
	database := openSQLiteForMigrationBootstrapTest(t, filepath.Join(t.TempDir(), "dojoaonde-email-index.db"))

	if err := database.Exec(
		`INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		"Ana", "Ana@Example.com", "hash-1",
	).Error; err != nil {
		t.Fatalf("insert first user: %v", err)
	}
	if err := database.Exec(
		`INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		"Ana", " ana@example.com ", "hash-2",
	).Error; err == nil {
		t.Fatal("expected duplicate normalized email insert to fail")
	}
}

func openSQLiteForMigrationBootstrapTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func seedEarlierRevisionSchema(t *testing.T, databasePath string) {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open legacy sqlite: %v", err)
	}

	initSQL, err := fs.ReadFile(embeddedmigrations.Files, "0001_init.sql")
	if err != nil {
		t.Fatalf("read 0001 migration: %v", err)
	}
	for _, statement := range splitSQLStatements(string(initSQL)) {
		if err := database.Exec(statement).Error; err != nil {
			t.Fatalf("apply 0001 statement %q: %v", statement, err)
		}
	}

	if err := database.Exec(
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES (1, 'Legacy', 'legacy@example.com', 'hash', CURRENT_TIMESTAMP)`,
	).Error; err != nil {
		t.Fatalf("insert legacy user: %v", err)
	}
	if err := database.Exec(
		`INSERT INTO dojos (user_id, local, day, info, gmaps_link) VALUES (1, 'Legacy venue', '2020-01-10', 'old', 'https://maps.example.com/legacy')`,
	).Error; err != nil {
		t.Fatalf("insert legacy dojo: %v", err)
	}

	if database.Migrator().HasTable("schema_migrations") {
		t.Fatal("expected legacy schema to not have schema_migrations table")
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open legacy sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close legacy sql db: %v", err)
	}
}

func assertDojosSchemaHasLaterRevisionColumns(t *testing.T, database *gorm.DB) {
	t.Helper()

	for _, column := range []string{"address", "city", "limit_people"} {
		exists, err := columnExists(database, "dojos", column)
		if err != nil {
			t.Fatalf("inspect dojos.%s: %v", column, err)
		}
		if !exists {
			t.Fatalf("expected dojos.%s column to exist after migrations", column)
		}
	}
}

func assertAllEmbeddedMigrationsApplied(t *testing.T, database *gorm.DB) {
	t.Helper()

	embedded, err := readMigrations(embeddedmigrations.Files)
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	records := loadMigrationRecords(t, database)
	if len(records) != len(embedded) {
		t.Fatalf("expected %d applied migrations, got %d (%v)", len(embedded), len(records), records)
	}
	for _, migration := range embedded {
		key := fmt.Sprintf("%d:%s", migration.Version, migration.Name)
		if _, ok := records[key]; !ok {
			t.Fatalf("expected migration %s to be recorded", key)
		}
	}
}

func loadMigrationRecords(t *testing.T, database *gorm.DB) map[string]struct{} {
	t.Helper()

	var rows []struct {
		Version string `gorm:"column:version"`
		Name    string `gorm:"column:name"`
	}
	if err := database.Raw(`SELECT version, name FROM schema_migrations`).Scan(&rows).Error; err != nil {
		t.Fatalf("load schema_migrations: %v", err)
	}

	records := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		records[row.Version+":"+row.Name] = struct{}{}
	}
	return records
}
