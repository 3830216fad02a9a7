package analysis

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const actualColumns = `
	event_id,
	COALESCE(event_type_code, ''),
	guest_count_snapshot,
	price_snapshot,
	total_wages,
	total_alcohol_expenses,
	total_general_expenses,
	total_ice_expenses
`

func (r *PostgresRepository) ListActualsByEventType(
	ctx context.Context,
	eventTypeCode string,
) ([]EventActual, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+actualColumns+`
		FROM event_actuals
		WHERE event_type_code = $1
	`, eventTypeCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActuals(rows)
}

func (r *PostgresRepository) ListActuals(ctx context.Context) ([]EventActual, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+actualColumns+`
		FROM event_actuals
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActuals(rows)
}

func scanActuals(rows pgx.Rows) ([]EventActual, error) {
	var out []EventActual
	for rows.Next() {
		var a EventActual
		if err := rows.Scan(
			&a.EventID,
			&a.EventTypeCode,
			&a.GuestCount,
			&a.Price,
			&a.TotalWages,
			&a.TotalAlcoholExpenses,
			&a.TotalGeneralExpenses,
			&a.TotalIceExpenses,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FindPriceListEntry matches the tightest bracket covering the guest
// count. Returns nil, nil when nothing matches.
func (r *PostgresRepository) FindPriceListEntry(
	ctx context.Context,
	eventTypeCode string,
	guestCount int,
) (*PriceListEntry, error) {

	row := r.db.QueryRow(ctx, `
		SELECT name, event_type_code, min_guests, max_guests, price
		FROM price_list
		WHERE event_type_code = $1
		  AND min_guests <= $2
		  AND max_guests >= $2
		ORDER BY max_guests - min_guests
		LIMIT 1
	`, eventTypeCode, guestCount)

	entry := &PriceListEntry{}
	err := row.Scan(&entry.Name, &entry.EventTypeCode, &entry.MinGuests, &entry.MaxGuests, &entry.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}
