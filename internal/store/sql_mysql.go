package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/jrebel-license-server/internal/config"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/migrations"
	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers consumed by the repositories.
const mysqlDuplicateEntry = 1062

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectMySQL opens and pings a MySQL connection described by cfg.
func NewConnectMySQL(ctx context.Context, cfg *config.MySQLConfig, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMySQL").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// mysqlError extracts the MySQL server error number, or 0 for non-driver
// errors.
func mysqlError(err error) uint16 {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number
	}

	return 0
}
