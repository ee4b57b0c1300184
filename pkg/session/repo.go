package session

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ASTRELLECT/SynVotra/pkg/logger"
)

// The store keeps at most one session, shared by every process that
// points at the same database file. A logout in one process is seen by
// all others on their next validity check.
const schema = `
CREATE TABLE IF NOT EXISTS session (
	id           INTEGER PRIMARY KEY CHECK (id = 1),
	access_token TEXT NOT NULL,
	user_role    TEXT NOT NULL,
	user_id      TEXT NOT NULL,
	expires_at   INTEGER NOT NULL DEFAULT 0
)`

type Repo struct {
	DB  *sql.DB
	now func() time.Time
}

// OpenStore opens (creating if needed) the session database at path.
func OpenStore(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("session/repo: can't create state dir, %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("session/repo: can't open session store, %w", err)
	}
	return db, nil
}

func NewSessionRepo(db *sql.DB) (*Repo, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("session/repo: failed creating session table, %w", err)
	}
	return &Repo{DB: db, now: time.Now}, nil
}

// Save persists the session, unconditionally replacing any prior one.
// A zero ttl records no client-side expiry.
func (r *Repo) Save(token string, role Role, userID string, ttl time.Duration) error {
	var exp int64
	if ttl != 0 {
		exp = r.now().Add(ttl).Unix()
	}
	_, err := r.DB.Exec(
		`INSERT INTO session(id, access_token, user_role, user_id, expires_at) VALUES(1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   access_token = excluded.access_token,
		   user_role    = excluded.user_role,
		   user_id      = excluded.user_id,
		   expires_at   = excluded.expires_at`,
		token, string(role), userID, exp)
	if err != nil {
		return fmt.Errorf("session/repo: failed insert into session, %w", err)
	}
	return nil
}

// Read returns the stored session, or ErrNoSession when it is absent.
// A partial row (any mandatory field missing) also reads as absent.
func (r *Repo) Read() (*Session, error) {
	row := r.DB.QueryRow(`SELECT access_token, user_role, user_id, expires_at FROM session WHERE id = 1`)

	var token, role, userID string
	var exp int64
	err := row.Scan(&token, &role, &userID, &exp)
	if err == sql.ErrNoRows {
		return nil, ErrNoSession
	} else if err != nil {
		return nil, fmt.Errorf("session/repo: failed reading session, %w", err)
	}

	if token == `` || role == `` || userID == `` {
		return nil, ErrNoSession
	}

	s := &Session{
		Token:  token,
		Role:   ParseRole(role),
		UserID: userID,
	}
	if exp != 0 {
		s.Expiry = time.Unix(exp, 0)
	}
	return s, nil
}

// Token returns the stored bearer token even when the rest of the
// session is incomplete. The authenticated client only needs the token.
func (r *Repo) Token() string {
	row := r.DB.QueryRow(`SELECT access_token FROM session WHERE id = 1`)
	var token string
	if err := row.Scan(&token); err != nil {
		return ``
	}
	return token
}

// IsValid reports whether a usable session is stored. An expired
// session is cleared before returning false.
func (r *Repo) IsValid() bool {
	row := r.DB.QueryRow(`SELECT access_token, expires_at FROM session WHERE id = 1`)

	var token string
	var exp int64
	err := row.Scan(&token, &exp)
	if err == sql.ErrNoRows {
		return false
	} else if err != nil {
		logger.Log(context.Background()).Errorf("session/repo: failed checking session, %v", err)
		return false
	}

	if token == `` {
		return false
	}
	if exp != 0 && !r.now().Before(time.Unix(exp, 0)) {
		if clearErr := r.Clear(); clearErr != nil {
			logger.Log(context.Background()).Errorf("session/repo: failed clearing expired session, %v", clearErr)
		}
		return false
	}
	return true
}

// Clear removes the session. Clearing an empty store is a no-op.
func (r *Repo) Clear() error {
	_, err := r.DB.Exec(`DELETE FROM session WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("session/repo: failed deleting session, %w", err)
	}
	return nil
}
