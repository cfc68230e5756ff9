package config

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// datetimePrecision keeps microseconds on MySQL datetime columns, matching
// utils.Timestamp.
const datetimePrecision = 6

// ConnectDB opens the configured SQL database. The returned handle lives for
// the whole process and is released with CloseDB.
func ConnectDB(cfg DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func dialectorFor(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres:
		connConfig, err := pgx.ParseConfig(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid postgres DB_URL: %w", err)
		}
		if cfg.Name != "" {
			connConfig.Database = cfg.Name
		}
		return postgres.New(postgres.Config{Conn: stdlib.OpenDB(*connConfig)}), nil
	case DriverMySQL:
		mysqlConfig, err := mysql.ParseDSN(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid mysql DB_URL: %w", err)
		}
		if cfg.Name != "" {
			mysqlConfig.DBName = cfg.Name
		}
		mysqlConfig.ParseTime = true
		precision := datetimePrecision
		return mysqldriver.New(mysqldriver.Config{
			DSN:                      mysqlConfig.FormatDSN(),
			DefaultDatetimePrecision: &precision,
		}), nil
	default:
		return nil, fmt.Errorf("driver %q has no SQL dialector", cfg.Driver)
	}
}

// CloseDB releases the connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
