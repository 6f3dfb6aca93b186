// Package store persists leads, deals, and activities. Two drivers exist:
// sqlite for single-user local use and postgres for shared deployments.
package store

import (
	"context"

	"github.com/edurishi/sales-assistant/internal/model"
)

// LeadFilter specifies criteria for listing leads.
type LeadFilter struct {
	Status       string `json:"status,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Source       string `json:"source,omitempty"`
	MinScore     int    `json:"min_score,omitempty"`
	Limit        int    `json:"limit,omitempty"`
	Offset       int    `json:"offset,omitempty"`
}

// DealFilter specifies criteria for listing deals.
type DealFilter struct {
	Stage  string `json:"stage,omitempty"`
	LeadID string `json:"lead_id,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for the sales assistant.
type Store interface {
	// Leads
	SaveLead(ctx context.Context, lead *model.Lead) error
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	ListLeads(ctx context.Context, filter LeadFilter) ([]model.Lead, error)

	// Deals
	SaveDeal(ctx context.Context, deal *model.Deal) error
	UpdateDealStage(ctx context.Context, dealID, stage string, probability int) error
	GetDeal(ctx context.Context, id string) (*model.Deal, error)
	ListDeals(ctx context.Context, filter DealFilter) ([]model.Deal, error)

	// Activity log
	AppendActivity(ctx context.Context, a model.Activity) error
	ListActivities(ctx context.Context, limit int) ([]model.Activity, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
