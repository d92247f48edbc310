package store

import (
	"context"
	"fmt"
	"time"
)

type sessionEventRow struct {
	ID                int    `db:"id"`
	Sequence          int64  `db:"sequence"`
	CreatedAt         int64  `db:"created_at"`
	SessionID         string `db:"session_id"`
	Action            string `db:"action"`
	Source            string `db:"source"`
	TotalQuestions    int    `db:"total_questions"`
	QuestionsAnswered int    `db:"questions_answered"`
	CorrectAnswers    int    `db:"correct_answers"`
	Score             int    `db:"score"`
	DurationSecs      int    `db:"duration_secs"`
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.SessionID == "" {
		return fmt.Errorf("session event: empty session id")
	}
	if data.Action != SessionStart && data.Action != SessionFinish {
		return fmt.Errorf("session event: unknown action %q", data.Action)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	row := sessionEventRow{
		Sequence:          seqNum,
		CreatedAt:         time.Now().UnixMilli(),
		SessionID:         data.SessionID,
		Action:            data.Action,
		Source:            data.Source,
		TotalQuestions:    data.TotalQuestions,
		QuestionsAnswered: data.QuestionsAnswered,
		CorrectAnswers:    data.CorrectAnswers,
		Score:             data.Score,
		DurationSecs:      data.DurationSecs,
	}
	_, err = r.db.NamedExecContext(ctx, `INSERT INTO quiz_session_events
		(sequence, created_at, session_id, action, source, total_questions,
		 questions_answered, correct_answers, score, duration_secs)
		VALUES (:sequence, :created_at, :session_id, :action, :source, :total_questions,
		 :questions_answered, :correct_answers, :score, :duration_secs)`, row)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	where, args := opts.where(false)
	query := `SELECT id, sequence, created_at, session_id, action, source, total_questions,
		questions_answered, correct_answers, score, duration_secs
		FROM quiz_session_events` + where + ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	var rows []sessionEventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	out := make([]SessionEvent, len(rows))
	for i, row := range rows {
		out[i] = SessionEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: time.UnixMilli(row.CreatedAt).UTC(),
			SessionEventData: SessionEventData{
				SessionID:         row.SessionID,
				Action:            row.Action,
				Source:            row.Source,
				TotalQuestions:    row.TotalQuestions,
				QuestionsAnswered: row.QuestionsAnswered,
				CorrectAnswers:    row.CorrectAnswers,
				Score:             row.Score,
				DurationSecs:      row.DurationSecs,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) SessionStats(ctx context.Context) (SessionStats, error) {
	var agg struct {
		Started  int     `db:"started"`
		Finished int     `db:"finished"`
		Live     int     `db:"live"`
		Best     int     `db:"best"`
		Avg      float64 `db:"avg"`
	}
	err := r.db.GetContext(ctx, &agg, `SELECT
			COALESCE(SUM(CASE WHEN action = 'start' THEN 1 ELSE 0 END), 0) AS started,
			COALESCE(SUM(CASE WHEN action = 'finish' THEN 1 ELSE 0 END), 0) AS finished,
			COALESCE(SUM(CASE WHEN action = 'start' AND source = 'live' THEN 1 ELSE 0 END), 0) AS live,
			COALESCE(MAX(CASE WHEN action = 'finish' THEN score END), 0) AS best,
			COALESCE(AVG(CASE WHEN action = 'finish' THEN score END), 0) AS avg
		FROM quiz_session_events`)
	if err != nil {
		return SessionStats{}, fmt.Errorf("session stats: %w", err)
	}

	st := SessionStats{
		Started:   agg.Started,
		Finished:  agg.Finished,
		BestScore: agg.Best,
		AvgScore:  agg.Avg,
	}
	if st.Started > st.Finished {
		st.Abandoned = st.Started - st.Finished
	}
	if st.Started > 0 {
		st.LiveShare = float64(agg.Live) / float64(st.Started)
	}
	return st, nil
}
