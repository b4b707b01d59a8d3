package store

const schema = `
-- One grouping invocation
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL,
    target_interest TEXT NOT NULL,
    group_size INTEGER NOT NULL,
    cluster_count INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    student_count INTEGER NOT NULL,
    group_count INTEGER NOT NULL
);

-- Augmented student records of a run
CREATE TABLE IF NOT EXISTS assignments (
    run_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    gpa REAL NOT NULL,
    major TEXT NOT NULL,
    minor TEXT NOT NULL,
    interest_score REAL NOT NULL,
    fuzzy_gpa REAL NOT NULL,
    fuzzy_total REAL NOT NULL,
    rank_score REAL NOT NULL,
    group_id INTEGER NOT NULL,
    member_order INTEGER NOT NULL,

    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE,
    PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_assignments_group ON assignments(run_id, group_id, member_order);
`
