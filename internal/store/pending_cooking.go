package store

import (
	"context"
	"fmt"

	"github.com/nroshal/tastebook/internal/logger"
)

type pendingCookingRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingCookingRepository(db *DB, logger *logger.Logger) PendingCookingRepository {
	return &pendingCookingRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *pendingCookingRepository) Enqueue(ctx context.Context, event PendingCookingEvent) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, insertPendingEvent,
		event.ID,
		event.RecipeID,
		event.RecipeTitle,
		event.Action,
		event.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingCookingRepository.Enqueue").
			Str("record_id", event.ID).
			Str("recipe_id", event.RecipeID).
			Msg("failed to execute insert for pending cooking event")
		return fmt.Errorf("failed to enqueue cooking event (record_id=%s): %w", event.ID, err)
	}

	return nil
}

func (p *pendingCookingRepository) List(ctx context.Context) ([]PendingCookingEvent, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listPendingEvents)
	if err != nil {
		log.Err(err).
			Str("func", "pendingCookingRepository.List").
			Msg("failed to execute query for pending cooking events")
		return nil, fmt.Errorf("failed to query pending cooking events: %w", err)
	}
	defer rows.Close()

	var events []PendingCookingEvent
	for rows.Next() {
		var event PendingCookingEvent

		scanErr := rows.Scan(
			&event.ID,
			&event.RecipeID,
			&event.RecipeTitle,
			&event.Action,
			&event.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pendingCookingRepository.List").
				Msg("failed to scan pending cooking event row")
			return nil, fmt.Errorf("failed to scan pending cooking event row: %w", scanErr)
		}

		events = append(events, event)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pendingCookingRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending cooking event rows: %w", rowsErr)
	}

	return events, nil
}

func (p *pendingCookingRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, deletePendingEvent, id)
	if err != nil {
		log.Err(err).
			Str("func", "pendingCookingRepository.Delete").
			Str("record_id", id).
			Msg("failed to execute delete for pending cooking event")
		return fmt.Errorf("failed to delete pending cooking event (record_id=%s): %w", id, err)
	}

	return nil
}
