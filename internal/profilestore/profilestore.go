// Package profilestore persists assessment profiles on SQL, DynamoDB, or in-memory backends.
package profilestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
)

// Options selects and configures a profile backend.
type Options struct {
	Backend        schema.DatabaseBackend
	ConnStr        string // Please use env var as this is plaintext
	DynamoTable    string
	DynamoEndpoint string
	AWSRegion      string
}

// OptionsFromConfig extracts the store options from a validated config.
func OptionsFromConfig(cfg *contract.Config) Options {
	return Options{
		Backend:        cfg.Backend,
		ConnStr:        cfg.DBConnect,
		DynamoTable:    cfg.DynamoTable,
		DynamoEndpoint: cfg.DynamoEndpoint,
		AWSRegion:      cfg.AWSRegion,
	}
}

// Open initializes the configured profile repository.
func Open(ctx context.Context, opts Options) (contract.ProfileRepository, error) {
	switch opts.Backend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
		store, err := NewSQLStore(opts.Backend, opts.ConnStr)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize profile store: %w", err)
		}
		return store, nil

	case schema.DynamoDBBackend:
		client, err := NewDynamoClient(ctx, opts.AWSRegion, opts.DynamoEndpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize profile store: %w", err)
		}
		return &DynamoStore{Client: client, TableName: opts.DynamoTable}, nil

	case schema.MemoryBackend:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s. Must be sqlite, mysql, postgresql, dynamodb, or memory", opts.Backend)
	}
}

// Clear removes every stored profile for the configured backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the profile and migration tables.
// For DynamoDB, it deletes every item but keeps the table.
// For the memory backend, there is nothing to clear between processes.
func Clear(ctx context.Context, opts Options) error {
	switch opts.Backend {
	case schema.SQLiteBackend:
		dbFilePath := opts.ConnStr
		if dbFilePath == "" {
			dbFilePath = contract.GetDBFilePath()
		}
		if dbFilePath == ":memory:" {
			return nil
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		return dropSQLTables(opts.Backend, opts.ConnStr, profilesTable, migrationsTable)

	case schema.DynamoDBBackend:
		client, err := NewDynamoClient(ctx, opts.AWSRegion, opts.DynamoEndpoint)
		if err != nil {
			return err
		}
		store := &DynamoStore{Client: client, TableName: opts.DynamoTable}
		_, err = store.Clear(ctx)
		return err

	case schema.MemoryBackend:
		return nil

	default:
		return fmt.Errorf("unsupported backend for clearing: %s", opts.Backend)
	}
}

// dropSQLTables connects to the SQL database and drops the tables if they exist.
func dropSQLTables(backend schema.DatabaseBackend, connStr string, tables ...string) error {
	db, err := openSQL(backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return dropTables(db, tables...)
}

func dropTables(db *sql.DB, tables ...string) error {
	for _, table := range tables {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
