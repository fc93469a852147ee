package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per generate invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    external_id TEXT NOT NULL UNIQUE,    -- artifact run ID (timestamp-hash)
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    model_name TEXT NOT NULL,
    provider TEXT NOT NULL,              -- gemini, openai, anthropic, mock
    mode TEXT NOT NULL,                  -- all, first_only
    topic_count INTEGER NOT NULL,
    fields_ok INTEGER NOT NULL DEFAULT 0,
    fields_failed INTEGER NOT NULL DEFAULT 0,
    run_dir TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model_name);

-- Run fields: one row per (topic, field) call
CREATE TABLE IF NOT EXISTS run_fields (
    field_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    topic_index INTEGER NOT NULL,
    topic_input TEXT NOT NULL,
    field TEXT NOT NULL,                 -- page_title ... main_text_html
    status TEXT NOT NULL,                -- success, failed
    error_message TEXT,                  -- terminal error marker when failed
    chars INTEGER NOT NULL DEFAULT 0,    -- generated value length
    matched_internal TEXT,               -- pipe-joined, body field only
    matched_external TEXT,               -- pipe-joined, body field only
    language TEXT,                       -- detected body language, if any
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_fields_run ON run_fields(run_id);
CREATE INDEX IF NOT EXISTS idx_run_fields_status ON run_fields(status);
`
