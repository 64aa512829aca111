package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

// CacheStat summarises the cached entries of one kind.
type CacheStat struct {
	Kind    string `db:"kind"`
	Entries int    `db:"entries"`
	Expired int    `db:"expired"`
	Bytes   int64  `db:"bytes"`
}

// kindOf returns the key prefix before the first colon.
func kindOf(key string) string {
	kind, _, _ := strings.Cut(key, ":")
	return kind
}

func (db *DB) GetCache(key string) ([]byte, error) {
	type cacheRow struct {
		ExpiresAt sql.NullInt64 `db:"expires_at"`
		Data      []byte        `db:"data"`
	}

	var row cacheRow
	err := db.Get(&row, "SELECT data, expires_at FROM cache WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if row.ExpiresAt.Valid && time.Now().Unix() >= row.ExpiresAt.Int64 {
		_, _ = db.Exec("DELETE FROM cache WHERE key = ?", key)
		return nil, nil
	}

	return row.Data, nil
}

func (db *DB) SetCache(key string, data []byte, ttl time.Duration) error {
	now := time.Now()
	var expiresAt *int64
	if ttl > 0 {
		t := now.Add(ttl).Unix()
		expiresAt = &t
	}

	_, err := db.Exec(`
		INSERT INTO cache (key, kind, data, created_at, expires_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, created_at = excluded.created_at, expires_at = excluded.expires_at
	`, key, kindOf(key), data, now.Unix(), expiresAt)
	return err
}

func (db *DB) ClearCache() error {
	_, err := db.Exec("DELETE FROM cache")
	return err
}

// PurgeExpired deletes expired entries and reports how many went.
func (db *DB) PurgeExpired() (int64, error) {
	res, err := db.Exec("DELETE FROM cache WHERE expires_at IS NOT NULL AND expires_at <= ?", time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CacheStats groups the cache by entry kind.
func (db *DB) CacheStats() ([]CacheStat, error) {
	var stats []CacheStat
	err := db.Select(&stats, `
		SELECT kind,
			COUNT(*) AS entries,
			COALESCE(SUM(CASE WHEN expires_at IS NOT NULL AND expires_at <= ? THEN 1 ELSE 0 END), 0) AS expired,
			COALESCE(SUM(LENGTH(data)), 0) AS bytes
		FROM cache
		GROUP BY kind
		ORDER BY kind
	`, time.Now().Unix())
	return stats, err
}
