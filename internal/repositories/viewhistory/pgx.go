package viewhistory

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *PgxRepository) Record(ctx context.Context, entry Entry) error {
	query, args, err := sq.
		Insert("view_history").
		Columns("story_id", "item_index", "author", "completed", "viewed_at").
		Values(entry.StoryID, entry.ItemIndex, entry.Author, entry.Completed, time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build view history insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record view history: %w", err)
	}

	return nil
}

func (r *PgxRepository) SeenStoryIDs(ctx context.Context) (map[string]bool, error) {
	query, args, err := sq.
		Select("DISTINCT story_id").
		From("view_history").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build seen stories query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query seen stories: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan seen story id: %w", err)
		}
		seen[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seen story rows: %w", err)
	}

	return seen, nil
}

func (r *PgxRepository) ListByStory(ctx context.Context, storyID string) ([]*Entry, error) {
	query, args, err := sq.
		Select("id", "story_id", "item_index", "author", "completed", "viewed_at").
		From("view_history").
		Where(squirrel.Eq{"story_id": storyID}).
		OrderBy("viewed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build view history query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query view history: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		err := rows.Scan(
			&entry.ID,
			&entry.StoryID,
			&entry.ItemIndex,
			&entry.Author,
			&entry.Completed,
			&entry.ViewedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan view history row: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating view history rows: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrNotFound
	}

	return entries, nil
}

func (r *PgxRepository) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	query, args, err := sq.
		Delete("view_history").
		Where(squirrel.Lt{"viewed_at": time.Now().Add(-olderThan)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build cleanup query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up view history: %w", err)
	}

	return tag.RowsAffected(), nil
}

var _ Repository = (*PgxRepository)(nil)
