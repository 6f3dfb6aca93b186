// Package respond assembles sales-response prompts and drives the external
// text-generation service. Failures surface as errors to the caller; there
// is no automatic retry here, retries are caller policy.
package respond

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/recommend"
	"github.com/edurishi/sales-assistant/pkg/gentext"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-haiku-4-5-20251001"

// DefaultMaxTokens bounds the generated response length.
const DefaultMaxTokens = 2048

// promptProduct is the slimmed product shape embedded in the prompt.
type promptProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Pricing     string `json:"pricing"`
}

// BuildPrompt assembles the sales-response prompt from the customer record,
// the free-text enquiry, the recommended products, and optional prior
// conversation history.
func BuildPrompt(rec model.Record, enquiry string, recs []recommend.Recommendation, history string) (string, error) {
	customerJSON, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "respond: marshal customer data")
	}

	products := make([]promptProduct, 0, len(recs))
	for _, r := range recs {
		pricing := r.Pricing
		if pricing == "" {
			pricing = "Contact for pricing"
		}
		products = append(products, promptProduct{
			Name:        r.Name,
			Description: r.Description,
			Pricing:     pricing,
		})
	}
	productJSON, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "respond: marshal products")
	}

	var b strings.Builder
	b.WriteString("You are an AI sales agent for EDURISHI EDUVENTURES PVT LTD, an educational technology company.\n")
	b.WriteString("Your task is to generate a personalized sales response based on the customer data and enquiry details provided.\n\n")

	b.WriteString("## Customer Data:\n")
	b.Write(customerJSON)
	b.WriteString("\n\n## Enquiry Details:\n")
	b.WriteString(enquiry)
	b.WriteString("\n\n## Recommended Products:\n")
	b.Write(productJSON)
	b.WriteString("\n")

	if history != "" {
		b.WriteString("\n## Previous Conversation History:\n")
		b.WriteString(history)
		b.WriteString("\n\nPlease continue the conversation based on this history.\n")
	}

	if rec.ProductInterested != "" {
		b.WriteString("\n## Products Customer Is Interested In:\n")
		fmt.Fprintf(&b, "The customer has expressed specific interest in: %s\n", rec.ProductInterested)
		b.WriteString("Focus your response on these products, highlighting their benefits for the customer's specific needs.\n")
	}

	if rec.Budget != "" {
		b.WriteString("\n## Budget Information:\n")
		fmt.Fprintf(&b, "The customer has indicated a budget of: %s\n", rec.Budget)
		b.WriteString("Tailor your recommendations to align with this budget constraint.\n")
	}

	b.WriteString(`
## Response Format:
1. Start with a friendly greeting using the customer's name.
2. Provide a brief summary of their enquiry to show understanding.
3. Create a tailored sales pitch based on their data (profession, interests, etc.).
4. Specifically mention the recommended EDURISHI EDUVENTURES PVT LTD's educational solutions that would benefit them.
5. If they have expressed interest in specific products, emphasize those products.
6. If they have budget constraints, acknowledge them and explain how our solutions provide value within their budget.
7. End with a clear call to action (schedule a call, visit website, etc.).

Make your response conversational, professional, and persuasive. Focus on how EDURISHI's educational products/services solve their specific needs.
`)

	return b.String(), nil
}

// Metrics receives timing data after each successful generation.
type Metrics interface {
	RecordResponse(customerName string, elapsed time.Duration)
}

// Responder generates sales responses over a gentext client.
type Responder struct {
	client    gentext.Client
	engine    *recommend.Engine
	model     string
	maxTokens int64
	timeout   time.Duration
	metrics   Metrics
}

// Option customizes a Responder.
type Option func(*Responder)

// WithModel overrides the generation model.
func WithModel(model string) Option {
	return func(r *Responder) {
		if model != "" {
			r.model = model
		}
	}
}

// WithMaxTokens overrides the generation token cap.
func WithMaxTokens(n int64) Option {
	return func(r *Responder) {
		if n > 0 {
			r.maxTokens = n
		}
	}
}

// WithTimeout caps each generation call. Zero means no responder-level
// timeout beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(r *Responder) { r.timeout = d }
}

// WithMetrics installs a metrics sink.
func WithMetrics(m Metrics) Option {
	return func(r *Responder) { r.metrics = m }
}

// NewResponder builds a Responder. A nil engine gets the built-in catalog.
func NewResponder(client gentext.Client, engine *recommend.Engine, opts ...Option) *Responder {
	if engine == nil {
		engine = recommend.NewEngine(nil)
	}
	r := &Responder{
		client:    client,
		engine:    engine,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond produces a personalized sales response for a customer enquiry.
// The recommendation layer runs first so the prompt carries concrete product
// suggestions. A service failure comes back as an error, never a crash or a
// retry loop.
func (r *Responder) Respond(ctx context.Context, rec model.Record, enquiry, history string) (string, error) {
	recs := r.engine.Recommend(rec)

	prompt, err := BuildPrompt(rec, enquiry, recs, history)
	if err != nil {
		return "", err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := r.client.CreateMessage(ctx, gentext.MessageRequest{
		Model:     r.model,
		MaxTokens: r.maxTokens,
		Messages: []gentext.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "respond: generate response")
	}
	elapsed := time.Since(start)

	resp.Usage.LogCost(r.model, "sales_response")
	zap.L().Info("respond: response generated",
		zap.String("customer", rec.Name),
		zap.Duration("elapsed", elapsed),
		zap.Int("recommendations", len(recs)),
	)

	if r.metrics != nil {
		r.metrics.RecordResponse(rec.Name, elapsed)
	}
	return resp.Text(), nil
}
