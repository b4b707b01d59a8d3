// Package store keeps a history of grouping runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yyyoichi/studygroup"

	_ "modernc.org/sqlite"
)

var ErrRunNotFound = errors.New("run not found")

// Run describes one stored grouping.
type Run struct {
	ID             string
	CreatedAt      time.Time
	TargetInterest string
	GroupSize      int
	ClusterCount   int
	Seed           int64
	Students       int
	Groups         int
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores res under a new run. ID and CreatedAt are assigned when empty;
// Students and Groups are taken from res.
func (s *Store) Save(ctx context.Context, run Run, res *studygroup.Result) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}
	run.Students = len(res.Records)
	run.Groups = len(res.Groups)

	// member order within each group, keyed by record position
	order := make(map[*studygroup.Record]int, len(res.Records))
	for _, g := range res.Groups {
		for i, m := range g.Members {
			order[m] = i
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, target_interest, group_size, cluster_count, seed, student_count, group_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UnixNano(), run.TargetInterest, run.GroupSize, run.ClusterCount, run.Seed, run.Students, run.Groups,
	); err != nil {
		return Run{}, fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO assignments (run_id, position, name, gpa, major, minor, interest_score, fuzzy_gpa, fuzzy_total, rank_score, group_id, member_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("failed to prepare assignment insert: %w", err)
	}
	defer stmt.Close()
	for i := range res.Records {
		r := &res.Records[i]
		if _, err := stmt.ExecContext(ctx,
			run.ID, i, r.Name, r.GPA, r.Major, r.Minor,
			r.InterestScore, r.FuzzyGPA, r.FuzzyTotal, r.RankScore, r.GroupID, order[r],
		); err != nil {
			return Run{}, fmt.Errorf("failed to insert assignment %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("failed to commit run: %w", err)
	}
	return run, nil
}

// Runs lists stored runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, target_interest, group_size, cluster_count, seed, student_count, group_count
		 FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Run returns the run with id.
func (s *Store) Run(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, target_interest, group_size, cluster_count, seed, student_count, group_count
		 FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, err
}

// Result rebuilds the stored result of run id, with records in input order and group
// members in assignment order.
func (s *Store) Result(ctx context.Context, id string) (*studygroup.Result, error) {
	run, err := s.Run(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, name, gpa, major, minor, interest_score, fuzzy_gpa, fuzzy_total, rank_score, group_id, member_order
		 FROM assignments WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	res := &studygroup.Result{
		Records: make([]studygroup.Record, 0, run.Students),
		Groups:  make([]studygroup.Group, run.Groups),
	}
	var memberOrder []int
	for rows.Next() {
		var (
			r        studygroup.Record
			position int
			order    int
		)
		if err := rows.Scan(&position, &r.Name, &r.GPA, &r.Major, &r.Minor,
			&r.InterestScore, &r.FuzzyGPA, &r.FuzzyTotal, &r.RankScore, &r.GroupID, &order); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		res.Records = append(res.Records, r)
		memberOrder = append(memberOrder, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range res.Groups {
		res.Groups[i].ID = i + 1
	}
	for i := range res.Records {
		g := res.Records[i].GroupID - 1
		if g < 0 || g >= len(res.Groups) {
			return nil, fmt.Errorf("assignment %d references group %d of %d", i, g+1, len(res.Groups))
		}
		members := res.Groups[g].Members
		for len(members) <= memberOrder[i] {
			members = append(members, nil)
		}
		members[memberOrder[i]] = &res.Records[i]
		res.Groups[g].Members = members
	}
	return res, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run       Run
		createdAt int64
	)
	if err := row.Scan(&run.ID, &createdAt, &run.TargetInterest, &run.GroupSize,
		&run.ClusterCount, &run.Seed, &run.Students, &run.Groups); err != nil {
		return Run{}, err
	}
	run.CreatedAt = time.Unix(0, createdAt)
	return run, nil
}
