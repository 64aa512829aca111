package store

// Schema holds catalog responses and a few key/value settings.
// expires_at is a unix timestamp in seconds; NULL never expires.
const Schema = `
CREATE TABLE IF NOT EXISTS cache (
	key TEXT PRIMARY KEY,
	kind TEXT NOT NULL DEFAULT '',
	data BLOB,
	created_at INTEGER NOT NULL,
	expires_at INTEGER
);

CREATE INDEX IF NOT EXISTS idx_cache_expires_at ON cache(expires_at);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
