package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/edurishi/sales-assistant/internal/activity"
	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/recommend"
	"github.com/edurishi/sales-assistant/internal/store"
)

// openStore opens the configured persistence backend and runs migrations.
func openStore(ctx context.Context) (store.Store, error) {
	if err := cfg.Validate("store"); err != nil {
		return nil, err
	}

	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL, &cfg.Store.Pool)
	default:
		st, err = store.NewSQLite(cfg.Store.SQLitePath)
	}
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "store migrate")
	}
	return st, nil
}

// newActivity stamps a store-bound activity entry.
func newActivity(typ, description, relatedID, relatedName string) model.Activity {
	return model.Activity{
		ID:          uuid.NewString(),
		Type:        typ,
		Description: description,
		RelatedID:   relatedID,
		RelatedName: relatedName,
		User:        activity.DefaultActor,
		Timestamp:   time.Now(),
	}
}

// bulkLeadSaver is implemented by drivers that can batch lead writes.
type bulkLeadSaver interface {
	BulkSaveLeads(ctx context.Context, leads []model.Lead) (int64, error)
}

// bulkActivityAppender is implemented by drivers that can batch activity writes.
type bulkActivityAppender interface {
	BulkAppendActivities(ctx context.Context, entries []model.Activity) (int64, error)
}

// saveLeads persists leads through the driver's bulk path when it has one.
func saveLeads(ctx context.Context, st store.Store, leads []*model.Lead) error {
	if bulk, ok := st.(bulkLeadSaver); ok {
		vals := make([]model.Lead, len(leads))
		for i, l := range leads {
			vals[i] = *l
		}
		_, err := bulk.BulkSaveLeads(ctx, vals)
		return err
	}
	for _, lead := range leads {
		if err := st.SaveLead(ctx, lead); err != nil {
			return err
		}
	}
	return nil
}

// appendActivities persists activity entries, batched when the driver allows.
func appendActivities(ctx context.Context, st store.Store, entries []model.Activity) error {
	if bulk, ok := st.(bulkActivityAppender); ok {
		_, err := bulk.BulkAppendActivities(ctx, entries)
		return err
	}
	for _, a := range entries {
		if err := st.AppendActivity(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// loadCatalog returns the product catalog, applying the configured override
// file when one is set.
func loadCatalog() (recommend.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return recommend.DefaultCatalog(), nil
	}
	return recommend.LoadCatalog(cfg.Catalog.Path)
}
