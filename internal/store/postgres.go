package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/edurishi/sales-assistant/internal/db"
	"github.com/edurishi/sales-assistant/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"save_lead": `INSERT INTO leads (id, name, status, score, city, state, business_type, source, data, created_at)
	 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	 ON CONFLICT (id) DO UPDATE SET
	   name = $2, status = $3, score = $4, city = $5, state = $6,
	   business_type = $7, source = $8, data = $9`,
	"get_lead":          `SELECT data FROM leads WHERE id = $1`,
	"save_deal":         `INSERT INTO deals (id, lead_id, stage, amount, data, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (id) DO UPDATE SET stage = $3, amount = $4, data = $5, updated_at = $7`,
	"get_deal":          `SELECT data FROM deals WHERE id = $1`,
	"update_deal_stage": `UPDATE deals SET stage = $1, data = jsonb_set(jsonb_set(data, '{stage}', to_jsonb($1::text)), '{probability}', to_jsonb($2::int)), updated_at = $3 WHERE id = $4`,
	"append_activity":   `INSERT INTO activities (id, type, description, related_id, related_name, actor, occurred_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresWithPool wraps an existing pool, primarily for tests.
func NewPostgresWithPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Pool returns the underlying database pool for bulk operations.
func (s *PostgresStore) Pool() db.Pool {
	return s.pool
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS leads (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	status        TEXT NOT NULL,
	score         INTEGER NOT NULL,
	city          TEXT,
	state         TEXT,
	business_type TEXT,
	source        TEXT,
	data          JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS deals (
	id         TEXT PRIMARY KEY,
	lead_id    TEXT REFERENCES leads(id),
	stage      TEXT NOT NULL,
	amount     DOUBLE PRECISION NOT NULL DEFAULT 0,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS activities (
	id           TEXT PRIMARY KEY,
	type         TEXT NOT NULL,
	description  TEXT NOT NULL,
	related_id   TEXT,
	related_name TEXT,
	actor        TEXT,
	occurred_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
CREATE INDEX IF NOT EXISTS idx_leads_city ON leads(city);
CREATE INDEX IF NOT EXISTS idx_leads_business_type ON leads(business_type);
CREATE INDEX IF NOT EXISTS idx_deals_stage ON deals(stage);
CREATE INDEX IF NOT EXISTS idx_deals_lead_id ON deals(lead_id);
CREATE INDEX IF NOT EXISTS idx_activities_type ON activities(type);
CREATE INDEX IF NOT EXISTS idx_activities_occurred_at ON activities(occurred_at DESC);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) SaveLead(ctx context.Context, lead *model.Lead) error {
	data, err := json.Marshal(lead)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal lead")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO leads (id, name, status, score, city, state, business_type, source, data, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   name = $2, status = $3, score = $4, city = $5, state = $6,
		   business_type = $7, source = $8, data = $9`,
		lead.ID, lead.Name, lead.Status, lead.Score, lead.City, lead.State,
		lead.BusinessType, lead.Source, data, lead.CreatedAt.UTC(),
	)
	return eris.Wrapf(err, "postgres: save lead %s", lead.ID)
}

// BulkSaveLeads COPYs a batch of leads in one round trip, upserting on id.
func (s *PostgresStore) BulkSaveLeads(ctx context.Context, leads []model.Lead) (int64, error) {
	rows := make([][]any, 0, len(leads))
	for i := range leads {
		lead := &leads[i]
		data, err := json.Marshal(lead)
		if err != nil {
			return 0, eris.Wrapf(err, "postgres: marshal lead %s", lead.ID)
		}
		rows = append(rows, []any{
			lead.ID, lead.Name, lead.Status, lead.Score, lead.City, lead.State,
			lead.BusinessType, lead.Source, data, lead.CreatedAt.UTC(),
		})
	}

	return db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        "leads",
		Columns:      []string{"id", "name", "status", "score", "city", "state", "business_type", "source", "data", "created_at"},
		ConflictKeys: []string{"id"},
	}, rows)
}

// BulkAppendActivities COPYs a batch of activity entries in one round trip.
// Activities are append-only so the plain COPY protocol applies.
func (s *PostgresStore) BulkAppendActivities(ctx context.Context, entries []model.Activity) (int64, error) {
	rows := make([][]any, 0, len(entries))
	for _, a := range entries {
		rows = append(rows, []any{
			a.ID, a.Type, a.Description, a.RelatedID, a.RelatedName, a.User, a.Timestamp.UTC(),
		})
	}
	return db.CopyFrom(ctx, s.pool, "activities",
		[]string{"id", "type", "description", "related_id", "related_name", "actor", "occurred_at"},
		rows)
}

func (s *PostgresStore) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM leads WHERE id = $1`, id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, eris.Errorf("lead not found: %s", id)
		}
		return nil, eris.Wrapf(err, "postgres: get lead %s", id)
	}

	var lead model.Lead
	if err := json.Unmarshal(data, &lead); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal lead")
	}
	return &lead, nil
}

func (s *PostgresStore) ListLeads(ctx context.Context, filter LeadFilter) ([]model.Lead, error) {
	query := `SELECT data FROM leads WHERE true`
	args := []any{}
	argIdx := 1

	if filter.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.City != "" {
		query += fmt.Sprintf(` AND city = $%d`, argIdx)
		args = append(args, filter.City)
		argIdx++
	}
	if filter.State != "" {
		query += fmt.Sprintf(` AND state = $%d`, argIdx)
		args = append(args, filter.State)
		argIdx++
	}
	if filter.BusinessType != "" {
		query += fmt.Sprintf(` AND business_type = $%d`, argIdx)
		args = append(args, filter.BusinessType)
		argIdx++
	}
	if filter.Source != "" {
		query += fmt.Sprintf(` AND source = $%d`, argIdx)
		args = append(args, filter.Source)
		argIdx++
	}
	if filter.MinScore > 0 {
		query += fmt.Sprintf(` AND score >= $%d`, argIdx)
		args = append(args, filter.MinScore)
		argIdx++
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list leads")
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "postgres: scan lead")
		}
		var lead model.Lead
		if err := json.Unmarshal(data, &lead); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal lead")
		}
		leads = append(leads, lead)
	}
	return leads, eris.Wrap(rows.Err(), "postgres: list leads iterate")
}

func (s *PostgresStore) SaveDeal(ctx context.Context, deal *model.Deal) error {
	data, err := json.Marshal(deal)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal deal")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO deals (id, lead_id, stage, amount, data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET stage = $3, amount = $4, data = $5, updated_at = $7`,
		deal.ID, deal.LeadID, deal.Stage, deal.Amount, data,
		deal.CreatedAt.UTC(), time.Now().UTC(),
	)
	return eris.Wrapf(err, "postgres: save deal %s", deal.ID)
}

func (s *PostgresStore) UpdateDealStage(ctx context.Context, dealID, stage string, probability int) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE deals SET
		   stage = $1,
		   data = jsonb_set(jsonb_set(data, '{stage}', to_jsonb($1::text)), '{probability}', to_jsonb($2::int)),
		   updated_at = $3
		 WHERE id = $4`,
		stage, probability, time.Now().UTC(), dealID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update deal stage %s", dealID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("deal not found: %s", dealID)
	}
	return nil
}

func (s *PostgresStore) GetDeal(ctx context.Context, id string) (*model.Deal, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM deals WHERE id = $1`, id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, eris.Errorf("deal not found: %s", id)
		}
		return nil, eris.Wrapf(err, "postgres: get deal %s", id)
	}

	var deal model.Deal
	if err := json.Unmarshal(data, &deal); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal deal")
	}
	return &deal, nil
}

func (s *PostgresStore) ListDeals(ctx context.Context, filter DealFilter) ([]model.Deal, error) {
	query := `SELECT data FROM deals WHERE true`
	args := []any{}
	argIdx := 1

	if filter.Stage != "" {
		query += fmt.Sprintf(` AND stage = $%d`, argIdx)
		args = append(args, filter.Stage)
		argIdx++
	}
	if filter.LeadID != "" {
		query += fmt.Sprintf(` AND lead_id = $%d`, argIdx)
		args = append(args, filter.LeadID)
		argIdx++
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list deals")
	}
	defer rows.Close()

	var deals []model.Deal
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "postgres: scan deal")
		}
		var deal model.Deal
		if err := json.Unmarshal(data, &deal); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal deal")
		}
		deals = append(deals, deal)
	}
	return deals, eris.Wrap(rows.Err(), "postgres: list deals iterate")
}

func (s *PostgresStore) AppendActivity(ctx context.Context, a model.Activity) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO activities (id, type, description, related_id, related_name, actor, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Type, a.Description, a.RelatedID, a.RelatedName, a.User, a.Timestamp.UTC(),
	)
	return eris.Wrap(err, "postgres: append activity")
}

func (s *PostgresStore) ListActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, type, description, related_id, related_name, actor, occurred_at
		 FROM activities ORDER BY occurred_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list activities")
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		var relatedID, relatedName, actor *string
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &relatedID, &relatedName, &actor, &a.Timestamp); err != nil {
			return nil, eris.Wrap(err, "postgres: scan activity")
		}
		if relatedID != nil {
			a.RelatedID = *relatedID
		}
		if relatedName != nil {
			a.RelatedName = *relatedName
		}
		if actor != nil {
			a.User = *actor
		}
		activities = append(activities, a)
	}
	return activities, eris.Wrap(rows.Err(), "postgres: list activities iterate")
}
