package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the sqlite handle that keeps the crop advice history.
type DB struct {
	conn *sql.DB
}

func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("NewDB(): failed to open database: %w", err)
	}
	// :memory: 는 커넥션마다 별도 DB가 생기므로 하나로 고정
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("NewDB(): failed to connect to database: %w", err)
	}

	createRecordsTable := `
	CREATE TABLE IF NOT EXISTS records (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"username" TEXT NOT NULL,
			"city" TEXT NOT NULL,
			"crop" TEXT NOT NULL,
			"soil" TEXT NOT NULL,
			"advice" TEXT NOT NULL,
			"created_at" INTEGER NOT NULL
	);`
	createRecordsIndex := `CREATE INDEX IF NOT EXISTS idx_records_username ON records(username, created_at);`

	if _, err := conn.Exec(createRecordsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("NewDB(): failed to create records table: %w", err)
	}
	if _, err := conn.Exec(createRecordsIndex); err != nil {
		conn.Close()
		return nil, fmt.Errorf("NewDB(): failed to create records index: %w", err)
	}
	return &DB{conn: conn}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}
