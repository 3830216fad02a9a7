package events

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEventNotFound = errors.New("event not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = `
	id,
	name,
	event_date,
	guest_count,
	COALESCE(start_time, ''),
	COALESCE(end_time, ''),
	COALESCE(event_type_code, ''),
	COALESCE(event_type_label, ''),
	COALESCE(travel_distance, 0),
	COALESCE(travel_duration, 0),
	COALESCE(price, 0),
	status,
	created_at
`

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Event, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1
	`, id)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY event_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdatePrice(ctx context.Context, id int, price float64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE events
		SET price = $1
		WHERE id = $2
	`, price, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (*Event, error) {
	event := &Event{}
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.EventDate,
		&event.GuestCount,
		&event.StartTime,
		&event.EndTime,
		&event.EventTypeCode,
		&event.EventTypeLabel,
		&event.TravelDistanceMeters,
		&event.TravelDurationSec,
		&event.Price,
		&event.Status,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}
