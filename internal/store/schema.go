package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS plans (
    name            TEXT PRIMARY KEY,
    horizon_weeks   INTEGER NOT NULL,
    config_toml     TEXT NOT NULL,
    updated_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS actuals (
    plan_name       TEXT NOT NULL REFERENCES plans(name) ON DELETE CASCADE,
    week            INTEGER NOT NULL,
    record_date     TEXT,
    revenue         REAL NOT NULL,
    expenses        REAL NOT NULL,
    detail_toml     TEXT,
    recorded_at     TEXT NOT NULL,
    PRIMARY KEY (plan_name, week)
);

CREATE INDEX IF NOT EXISTS idx_actuals_plan ON actuals(plan_name);
`
