package logging

// #region imports
import (
	"database/sql"
	"fmt"
	"time"
)

// #endregion

// #region schema

const transcriptSchema = `
CREATE TABLE IF NOT EXISTS dialog_turns (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	turn_num    INTEGER NOT NULL,
	state       TEXT NOT NULL,
	act         TEXT NOT NULL,
	utterance   TEXT,
	response    TEXT,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_dialog_turns_session
ON dialog_turns(session_id, turn_num);
`

// #endregion

// #region transcript

// TurnEntry is one row of dialog provenance: what the user said, how it was
// classified, where the machine ended up and what it answered.
type TurnEntry struct {
	SessionID string
	TurnNum   int
	State     string
	Act       string
	Utterance string
	Response  string
	CreatedAt time.Time
}

// Transcript persists dialog turns in SQLite for later inspection.
type Transcript struct {
	db *sql.DB
}

// NewTranscript initializes the dialog_turns table on the shared database.
func NewTranscript(db *sql.DB) (*Transcript, error) {
	if _, err := db.Exec(transcriptSchema); err != nil {
		return nil, fmt.Errorf("migrate transcript: %w", err)
	}
	return &Transcript{db: db}, nil
}

// Record writes one turn entry.
func (t *Transcript) Record(entry TurnEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := t.db.Exec(
		`INSERT INTO dialog_turns (session_id, turn_num, state, act, utterance, response, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.TurnNum,
		entry.State,
		entry.Act,
		nullIfEmpty(entry.Utterance),
		nullIfEmpty(entry.Response),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record turn: %w", err)
	}
	return nil
}

// Session returns all turns for a session in order.
func (t *Transcript) Session(sessionID string) ([]TurnEntry, error) {
	rows, err := t.db.Query(
		`SELECT session_id, turn_num, state, act,
		        COALESCE(utterance, ''), COALESCE(response, ''), created_at
		 FROM dialog_turns WHERE session_id = ? ORDER BY turn_num`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	var out []TurnEntry
	for rows.Next() {
		var e TurnEntry
		var createdAt string
		if err := rows.Scan(&e.SessionID, &e.TurnNum, &e.State, &e.Act,
			&e.Utterance, &e.Response, &createdAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// SessionInfo summarizes one recorded session.
type SessionInfo struct {
	SessionID string
	Turns     int
	LastState string
	StartedAt time.Time
}

// Sessions lists the most recently started sessions, newest first.
func (t *Transcript) Sessions(limit int) ([]SessionInfo, error) {
	rows, err := t.db.Query(
		`SELECT session_id, COUNT(*), MIN(created_at)
		 FROM dialog_turns GROUP BY session_id
		 ORDER BY MIN(created_at) DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var startedAt string
		if err := rows.Scan(&info.SessionID, &info.Turns, &startedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		info.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := t.db.QueryRow(
			`SELECT state FROM dialog_turns WHERE session_id = ? ORDER BY turn_num DESC LIMIT 1`,
			out[i].SessionID).Scan(&out[i].LastState); err != nil {
			return nil, fmt.Errorf("last state: %w", err)
		}
	}
	return out, nil
}

// #endregion

// #region helpers
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// #endregion
