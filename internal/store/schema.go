package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS datasets (
    name                 TEXT PRIMARY KEY,
    approval_rate        REAL NOT NULL,
    default_rate         REAL NOT NULL,
    avg_loan_size        REAL NOT NULL,
    avg_risk_score       INTEGER NOT NULL,
    saved_at             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS performance_records (
    dataset              TEXT NOT NULL REFERENCES datasets(name) ON DELETE CASCADE,
    seq                  INTEGER NOT NULL,
    month                TEXT NOT NULL,
    default_rate         REAL NOT NULL,
    approval_rate        REAL NOT NULL,
    avg_risk_score       INTEGER NOT NULL,
    PRIMARY KEY (dataset, seq)
);
`
