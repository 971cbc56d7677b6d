package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mindease/mindease/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	s := &PostgresStorage{pool: pool, logger: logger}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (p *PostgresStorage) ensureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			bio TEXT NOT NULL DEFAULT '',
			avatar TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS moods (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			mood TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			tags JSONB NOT NULL DEFAULT '[]',
			lifestyle JSONB,
			user_email TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_moods_date ON moods(date DESC);`)
	if err != nil {
		p.logger.Errorf("failed to ensure schema: %v", err)
	}
	return err
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- MoodRepository ---

func (p *PostgresStorage) SaveMood(ctx context.Context, entry *internal.MoodEntry) error {
	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		return err
	}
	var lifestyle []byte
	if entry.Lifestyle != nil {
		lifestyle, err = json.Marshal(entry.Lifestyle)
		if err != nil {
			return err
		}
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO moods (id, date, mood, note, icon, tags, lifestyle, user_email) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.Date, entry.Mood, entry.Note, entry.Icon, tags, lifestyle, entry.UserEmail)
	if err != nil {
		p.logger.Errorf("failed to insert mood: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListMoods(ctx context.Context) ([]internal.MoodEntry, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, date, mood, note, icon, tags, lifestyle, user_email FROM moods ORDER BY date DESC`)
	if err != nil {
		p.logger.Errorf("failed to query moods: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []internal.MoodEntry{}
	for rows.Next() {
		var e internal.MoodEntry
		var tags []byte
		var lifestyle []byte
		if err := rows.Scan(&e.ID, &e.Date, &e.Mood, &e.Note, &e.Icon, &tags, &lifestyle, &e.UserEmail); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tags, &e.Tags); err != nil {
			e.Tags = []string{}
		}
		if len(lifestyle) > 0 {
			var ls internal.LifestyleStats
			if err := json.Unmarshal(lifestyle, &ls); err == nil {
				e.Lifestyle = &ls
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// --- UserRepository ---

func (p *PostgresStorage) LoginUser(ctx context.Context, name, email string) (*internal.User, error) {
	// ON CONFLICT DO NOTHING against the unique email index keeps concurrent
	// logins from ever producing two records.
	_, err := p.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, bio) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), name, email, internal.DefaultBio)
	if err != nil {
		p.logger.Errorf("failed to upsert user: %v", err)
		return nil, err
	}
	return p.GetUserByEmail(ctx, email)
}

func (p *PostgresStorage) UpdateUser(ctx context.Context, user *internal.User) (*internal.User, error) {
	tag, err := p.pool.Exec(ctx,
		`UPDATE users SET name = $1, bio = $2, avatar = $3 WHERE email = $4`,
		user.Name, user.Bio, user.Avatar, user.Email)
	if err != nil {
		p.logger.Errorf("failed to update user: %v", err)
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, &internal.NotFoundError{Kind: "user", Key: user.Email}
	}
	return p.GetUserByEmail(ctx, user.Email)
}

func (p *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	var u internal.User
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, email, bio, avatar FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Bio, &u.Avatar)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &internal.NotFoundError{Kind: "user", Key: email}
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

var _ MoodRepository = (*PostgresStorage)(nil)
var _ UserRepository = (*PostgresStorage)(nil)
