package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSettingNotFound = errors.New("setting not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Setting, error) {
	rows, err := r.db.Query(ctx, `
		SELECT key, value, COALESCE(description, ''), updated_at
		FROM settings
		ORDER BY key
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Description, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (*Setting, error) {
	row := r.db.QueryRow(ctx, `
		SELECT key, value, COALESCE(description, ''), updated_at
		FROM settings
		WHERE key = $1
	`, key)

	s := &Setting{}
	if err := row.Scan(&s.Key, &s.Value, &s.Description, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, s Setting) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO settings (key, value, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET
			value = EXCLUDED.value,
			description = EXCLUDED.description,
			updated_at = now()
	`, s.Key, s.Value, s.Description)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM settings WHERE key = $1`, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSettingNotFound
	}
	return nil
}
