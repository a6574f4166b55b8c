package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// journal implements Journal on top of the ent SQL driver.
type journal struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (j *journal) AppendCheck(ctx context.Context, data CheckEventData) error {
	seqNum, err := j.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(checkEventsTable).
		Columns("sequence", "timestamp", "session_id", "exercise_id", "answer_id", "correct").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.ExerciseID, data.AnswerID, data.Correct).
		Query()
	if err := j.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save check event: %w", err)
	}
	return nil
}

func (j *journal) AppendReset(ctx context.Context, data ResetEventData) error {
	seqNum, err := j.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(resetEventsTable).
		Columns("sequence", "timestamp", "session_id", "exercise_id", "answer_id").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.ExerciseID, data.AnswerID).
		Query()
	if err := j.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save reset event: %w", err)
	}
	return nil
}

func (j *journal) RecentChecks(ctx context.Context, opts QueryOpts) ([]CheckEvent, error) {
	t := entsql.Table(checkEventsTable)
	sel := builder().Select(
		t.C("sequence"), t.C("timestamp"), t.C("session_id"),
		t.C("exercise_id"), t.C("answer_id"), t.C("correct"),
	).From(t)

	if opts.After > 0 {
		sel.Where(entsql.GT(t.C("sequence"), opts.After))
	}
	if opts.ExerciseID != "" {
		sel.Where(entsql.EQ(t.C("exercise_id"), opts.ExerciseID))
	}
	sel.OrderBy(entsql.Desc(t.C("sequence")))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := j.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	var out []CheckEvent
	for rows.Next() {
		var e CheckEvent
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.SessionID, &e.ExerciseID, &e.AnswerID, &e.Correct); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return out, nil
}

func (j *journal) ExerciseStats(ctx context.Context) ([]ExerciseStat, error) {
	checks, err := j.RecentChecks(ctx, QueryOpts{})
	if err != nil {
		return nil, err
	}
	resets, err := j.resetCounts(ctx)
	if err != nil {
		return nil, err
	}

	type sessionKey struct{ exercise, session string }
	byExercise := make(map[string]*ExerciseStat)
	seen := make(map[sessionKey]bool)

	stat := func(id string) *ExerciseStat {
		s, ok := byExercise[id]
		if !ok {
			s = &ExerciseStat{ExerciseID: id}
			byExercise[id] = s
		}
		return s
	}

	// RecentChecks is newest first; walk oldest first so the first check of
	// each session is seen first.
	for i := len(checks) - 1; i >= 0; i-- {
		c := checks[i]
		s := stat(c.ExerciseID)
		s.Checks++
		if c.Correct {
			s.CorrectChecks++
		}
		key := sessionKey{c.ExerciseID, c.SessionID}
		if !seen[key] {
			seen[key] = true
			s.Sessions++
			if c.Correct {
				s.FirstTry++
			}
		}
	}
	for id, n := range resets {
		stat(id).Resets = n
	}

	out := make([]ExerciseStat, 0, len(byExercise))
	for _, s := range byExercise {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b ExerciseStat) int {
		return strings.Compare(a.ExerciseID, b.ExerciseID)
	})
	return out, nil
}

func (j *journal) resetCounts(ctx context.Context) (map[string]int, error) {
	t := entsql.Table(resetEventsTable)
	query, args := builder().
		Select(t.C("exercise_id"), entsql.Count("*")).
		From(t).
		GroupBy(t.C("exercise_id")).
		Query()

	var rows entsql.Rows
	if err := j.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query resets: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan resets: %w", err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}
