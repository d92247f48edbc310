package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

type llmEventRow struct {
	ID           int    `db:"id"`
	Sequence     int64  `db:"sequence"`
	CreatedAt    int64  `db:"created_at"`
	Provider     string `db:"provider"`
	Model        string `db:"model"`
	Purpose      string `db:"purpose"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	LatencyMs    int64  `db:"latency_ms"`
	Success      bool   `db:"success"`
	ErrorMessage string `db:"error_message"`
	RequestBody  string `db:"request_body"`
	ResponseBody string `db:"response_body"`
}

func (r llmEventRow) toEvent() LLMRequestEvent {
	return LLMRequestEvent{
		ID:        r.ID,
		Sequence:  r.Sequence,
		Timestamp: time.UnixMilli(r.CreatedAt).UTC(),
		LLMRequestEventData: LLMRequestEventData{
			Provider:     r.Provider,
			Model:        r.Model,
			Purpose:      r.Purpose,
			InputTokens:  r.InputTokens,
			OutputTokens: r.OutputTokens,
			LatencyMs:    r.LatencyMs,
			Success:      r.Success,
			ErrorMessage: r.ErrorMessage,
			RequestBody:  r.RequestBody,
			ResponseBody: r.ResponseBody,
		},
	}
}

const llmEventColumns = `id, sequence, created_at, provider, model, purpose, input_tokens,
	output_tokens, latency_ms, success, error_message, request_body, response_body`

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	row := llmEventRow{
		Sequence:     seqNum,
		CreatedAt:    time.Now().UnixMilli(),
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		RequestBody:  data.RequestBody,
		ResponseBody: data.ResponseBody,
	}
	_, err = r.db.NamedExecContext(ctx, `INSERT INTO llm_request_events
		(sequence, created_at, provider, model, purpose, input_tokens, output_tokens,
		 latency_ms, success, error_message, request_body, response_body)
		VALUES (:sequence, :created_at, :provider, :model, :purpose, :input_tokens, :output_tokens,
		 :latency_ms, :success, :error_message, :request_body, :response_body)`, row)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	where, args := opts.where(true)
	query := `SELECT ` + llmEventColumns + ` FROM llm_request_events` + where + ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	var rows []llmEventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestEvent, len(rows))
	for i, row := range rows {
		out[i] = row.toEvent()
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	var row llmEventRow
	err := r.db.GetContext(ctx, &row, `SELECT `+llmEventColumns+` FROM llm_request_events WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	e := row.toEvent()
	return &e, nil
}

type usageRow struct {
	Key          string  `db:"grp"`
	Calls        int     `db:"calls"`
	InputTokens  int     `db:"input_tokens"`
	OutputTokens int     `db:"output_tokens"`
	AvgLatencyMs float64 `db:"avg_latency_ms"`
	Failures     int     `db:"failures"`
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	rows, err := r.usageBy(ctx, "purpose")
	if err != nil {
		return nil, err
	}
	out := make([]LLMUsage, len(rows))
	for i, row := range rows {
		out[i] = row.toUsage()
		out[i].Purpose = row.Key
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	rows, err := r.usageBy(ctx, "model")
	if err != nil {
		return nil, err
	}
	out := make([]LLMUsage, len(rows))
	for i, row := range rows {
		out[i] = row.toUsage()
		out[i].Model = row.Key
	}
	return out, nil
}

// usageBy groups on a fixed column name; column is never user input.
func (r *eventRepo) usageBy(ctx context.Context, column string) ([]usageRow, error) {
	query := `SELECT ` + column + ` AS grp,
			COUNT(*) AS calls,
			COALESCE(SUM(input_tokens), 0) AS input_tokens,
			COALESCE(SUM(output_tokens), 0) AS output_tokens,
			COALESCE(AVG(latency_ms), 0) AS avg_latency_ms,
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0) AS failures
		FROM llm_request_events
		GROUP BY ` + column + `
		ORDER BY calls DESC, grp`

	var rows []usageRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("LLM usage by %s: %w", column, err)
	}
	return rows, nil
}

func (u usageRow) toUsage() LLMUsage {
	return LLMUsage{
		Calls:        u.Calls,
		InputTokens:  u.InputTokens,
		OutputTokens: u.OutputTokens,
		AvgLatencyMs: int64(u.AvgLatencyMs),
		Failures:     u.Failures,
	}
}

// where renders the shared filters as a SQL WHERE clause.
func (o QueryOpts) where(withPurpose bool) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if o.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, o.After)
	}
	if o.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, o.Before)
	}
	if !o.From.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, o.From.UnixMilli())
	}
	if !o.To.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, o.To.UnixMilli())
	}
	if withPurpose && o.Purpose != "" {
		conds = append(conds, "purpose = ?")
		args = append(args, o.Purpose)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
