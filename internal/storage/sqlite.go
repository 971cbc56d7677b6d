package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mindease/mindease/internal"
)

//go:embed schema.sql
var schema string

// SQLiteStorage backs the repositories with a single-file database. Tags and
// lifestyle metrics are stored as JSON text columns.
type SQLiteStorage struct {
	db     *sql.DB
	logger internal.Logger
}

func NewSQLiteStorage(dbPath string, logger internal.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStorage{db: db, logger: logger}, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// --- MoodRepository ---

func (s *SQLiteStorage) SaveMood(ctx context.Context, entry *internal.MoodEntry) error {
	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	var lifestyle sql.NullString
	if entry.Lifestyle != nil {
		b, err := json.Marshal(entry.Lifestyle)
		if err != nil {
			return fmt.Errorf("marshal lifestyle: %w", err)
		}
		lifestyle = sql.NullString{String: string(b), Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO moods (id, date, mood, note, icon, tags, lifestyle, user_email) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Date, entry.Mood, entry.Note, entry.Icon, string(tags), lifestyle, entry.UserEmail)
	if err != nil {
		s.logger.Errorf("sqlite: insert mood: %v", err)
		return err
	}
	return nil
}

func (s *SQLiteStorage) ListMoods(ctx context.Context) ([]internal.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, mood, note, icon, tags, lifestyle, user_email FROM moods ORDER BY date DESC`)
	if err != nil {
		s.logger.Errorf("sqlite: query moods: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []internal.MoodEntry{}
	for rows.Next() {
		var e internal.MoodEntry
		var tags string
		var lifestyle sql.NullString
		if err := rows.Scan(&e.ID, &e.Date, &e.Mood, &e.Note, &e.Icon, &tags, &lifestyle, &e.UserEmail); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
			e.Tags = []string{}
		}
		if lifestyle.Valid {
			var ls internal.LifestyleStats
			if err := json.Unmarshal([]byte(lifestyle.String), &ls); err == nil {
				e.Lifestyle = &ls
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// --- UserRepository ---

func (s *SQLiteStorage) LoginUser(ctx context.Context, name, email string) (*internal.User, error) {
	// INSERT OR IGNORE + SELECT: the unique index on email makes this safe
	// under concurrent logins.
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (id, name, email, bio) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), name, email, internal.DefaultBio)
	if err != nil {
		s.logger.Errorf("sqlite: upsert user: %v", err)
		return nil, err
	}
	return s.GetUserByEmail(ctx, email)
}

func (s *SQLiteStorage) UpdateUser(ctx context.Context, user *internal.User) (*internal.User, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET name = ?, bio = ?, avatar = ? WHERE email = ?`,
		user.Name, user.Bio, user.Avatar, user.Email)
	if err != nil {
		s.logger.Errorf("sqlite: update user: %v", err)
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &internal.NotFoundError{Kind: "user", Key: user.Email}
	}
	return s.GetUserByEmail(ctx, user.Email)
}

func (s *SQLiteStorage) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	var u internal.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, bio, avatar FROM users WHERE email = ?`,
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Bio, &u.Avatar)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &internal.NotFoundError{Kind: "user", Key: email}
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

var _ MoodRepository = (*SQLiteStorage)(nil)
var _ UserRepository = (*SQLiteStorage)(nil)
