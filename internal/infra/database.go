package infra

import (
	"fmt"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/config"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection for the configured driver, sizes the
// pool and migrates the schema.
//
// TranslateError is enabled so unique and foreign-key violations come back as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated regardless of driver;
// the repository layer relies on that.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	level := logger.Silent
	if cfg.LogSQL {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == "sqlite" {
		// One connection: PRAGMAs are per-connection and in-memory databases
		// vanish with the connection that created them.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(orDefault(cfg.DBMaxOpenConns, 25))
		sqlDB.SetMaxIdleConns(orDefault(cfg.DBMaxIdleConns, 5))
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "", "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("DB_DRIVER no soportado: %q", driver)
	}
}

// RunMigrations creates / updates every table of the data model, then applies
// the driver-specific statements AutoMigrate cannot express.
func RunMigrations(db *gorm.DB) error {
	if err := applyPreMigrationPatches(db); err != nil {
		return fmt.Errorf("pre-migration patches: %w", err)
	}
	if err := db.AutoMigrate(
		&model.Cliente{},
		&model.Producto{},
		&model.Inventario{},
		&model.Compra{},
		&model.DetalleCompra{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applyPreMigrationPatches runs before AutoMigrate. SQLite ships with foreign
// keys disabled, which would silently turn every ON DELETE CASCADE into a
// no-op and accept dangling references.
func applyPreMigrationPatches(db *gorm.DB) error {
	if db.Dialector.Name() != "sqlite" {
		return nil
	}
	return db.Exec("PRAGMA foreign_keys = ON").Error
}

// applySchemaPatches adds indexes GORM tags cannot declare. Every statement is
// idempotent so re-running on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	var patches []string
	switch db.Dialector.Name() {
	case "postgres", "sqlite":
		patches = append(patches,
			// case-insensitive product lookup by name
			`CREATE INDEX IF NOT EXISTS idx_productos_nombre_lower ON productos (lower(nombre))`,
		)
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
