package storage

import (
	"AgriMind_FarmAssistant/internal/models"
	"context"
	"time"
)

func (db *DB) CreateRecord(ctx context.Context, r models.Record) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	res, err := db.conn.ExecContext(ctx,
		"INSERT INTO records(username, city, crop, soil, advice, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		r.Username, r.City, r.Crop, r.Soil, r.Advice, r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// 최신순 조회
func (db *DB) GetRecordsByUsername(ctx context.Context, username string, limit int) ([]models.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, username, city, crop, soil, advice, created_at
		FROM records
		WHERE username = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := db.conn.QueryContext(ctx, query, username, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var r models.Record
		var createdMS int64 // unix milliseconds
		if err := rows.Scan(&r.ID, &r.Username, &r.City, &r.Crop, &r.Soil, &r.Advice, &createdMS); err != nil {
			return nil, err
		}
		r.CreatedAt = time.UnixMilli(createdMS)
		records = append(records, r)
	}
	return records, rows.Err()
}
