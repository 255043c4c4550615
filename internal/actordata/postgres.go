package actordata

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/FishingOverhaul_Go/internal/database"
	"github.com/osse101/FishingOverhaul_Go/internal/database/generated"
	"github.com/osse101/FishingOverhaul_Go/internal/database/migrations"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// Postgres stores actor values in PostgreSQL
type Postgres struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewPostgres creates a store on an open pool. Call MigratePostgres first.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{
		pool: pool,
		q:    generated.New(pool),
	}
}

// MigratePostgres creates or upgrades the actor_data table
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	return database.Migrate(ctx, stdlib.OpenDBFromPool(pool), goose.DialectPostgres, migrations.Postgres())
}

func (p *Postgres) Get(ctx context.Context, actorID, key string) (string, bool, error) {
	value, err := p.q.GetActorValue(ctx, generated.GetActorValueParams{
		ActorID: actorID,
		DataKey: key,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w: %w", ErrMsgGetFailed, domain.ErrDatabaseError, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, actorID, key, value string) error {
	err := p.q.UpsertActorValue(ctx, generated.UpsertActorValueParams{
		ActorID: actorID,
		DataKey: key,
		Value:   value,
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", ErrMsgSetFailed, domain.ErrDatabaseError, err)
	}
	return nil
}

func (p *Postgres) All(ctx context.Context, actorID string) (map[string]string, error) {
	rows, err := p.q.ListActorValues(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgListFailed, domain.ErrDatabaseError, err)
	}
	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r.DataKey] = r.Value
	}
	return values, nil
}

func (p *Postgres) Clear(ctx context.Context, actorID string) (int, error) {
	n, err := p.q.DeleteActorValues(ctx, actorID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", ErrMsgClearFailed, domain.ErrDatabaseError, err)
	}
	return int(n), nil
}

// Ping checks the database is reachable
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close releases the pool
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
