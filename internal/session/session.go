// Package session holds the in-memory working state of one user session:
// leads, deals, the pipeline, tasks, meetings, counters, and the activity
// log. Collections are never shared across sessions; there is exactly one
// logical writer at a time, so no locking is needed here.
package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/edurishi/sales-assistant/internal/activity"
	"github.com/edurishi/sales-assistant/internal/classify"
	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/pipeline"
	"github.com/edurishi/sales-assistant/internal/refdata"
	"github.com/edurishi/sales-assistant/internal/scoring"
)

// DefaultOwner is assigned to leads and deals with no explicit owner.
const DefaultOwner = "Current User"

// GenerationStats tracks where the session's leads came from.
type GenerationStats struct {
	TotalGenerated int            `json:"total_generated"`
	TotalImported  int            `json:"total_imported"`
	TotalManual    int            `json:"total_manual"`
	ByCity         map[string]int `json:"by_city"`
	ByState        map[string]int `json:"by_state"`
	ByBusinessType map[string]int `json:"by_business_type"`
	ByDate         map[string]int `json:"by_date"`
}

// SalesMetrics accumulates response-generation counters.
type SalesMetrics struct {
	ResponsesGenerated int
	ConversationsSaved int
	customersEngaged   map[string]struct{}
	responseTimes      []time.Duration
}

// CustomersEngaged reports how many distinct customers received a response.
func (m *SalesMetrics) CustomersEngaged() int {
	return len(m.customersEngaged)
}

// AvgResponseTime is the mean generation latency, zero if nothing recorded.
func (m *SalesMetrics) AvgResponseTime() time.Duration {
	if len(m.responseTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range m.responseTimes {
		total += d
	}
	return total / time.Duration(len(m.responseTimes))
}

// Session is the complete mutable state of one user session.
type Session struct {
	now func() time.Time

	leads     []*model.Lead
	leadIndex map[string]*model.Lead
	deals     map[string]*model.Deal
	dealOrder []string
	pipeline  *pipeline.Pipeline

	tasks    []model.Task
	meetings []model.Meeting

	leadsByCity         map[string][]string
	leadsByState        map[string][]string
	leadsByBusinessType map[string][]string
	leadSources         map[string]int
	genStats            GenerationStats
	metrics             SalesMetrics

	log *activity.Log
}

// Option customizes a Session.
type Option func(*Session)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		now:                 time.Now,
		leadIndex:           make(map[string]*model.Lead),
		deals:               make(map[string]*model.Deal),
		pipeline:            pipeline.New(),
		leadsByCity:         make(map[string][]string),
		leadsByState:        make(map[string][]string),
		leadsByBusinessType: make(map[string][]string),
		leadSources:         make(map[string]int),
		genStats: GenerationStats{
			ByCity:         make(map[string]int),
			ByState:        make(map[string]int),
			ByBusinessType: make(map[string]int),
			ByDate:         make(map[string]int),
		},
		metrics: SalesMetrics{customersEngaged: make(map[string]struct{})},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = activity.NewLog(activity.WithClock(s.now))
	return s
}

// Log exposes the session's activity log.
func (s *Session) Log() *activity.Log { return s.log }

// Metrics exposes the session's sales metrics.
func (s *Session) Metrics() *SalesMetrics { return &s.metrics }

// GenerationStats returns a snapshot of the lead-origin counters.
func (s *Session) GenerationStats() GenerationStats { return s.genStats }

// LeadSources returns a copy of the per-source lead counters.
func (s *Session) LeadSources() map[string]int {
	out := make(map[string]int, len(s.leadSources))
	for k, v := range s.leadSources {
		out[k] = v
	}
	return out
}

// CreateLead builds a lead from a raw record, scores it, fills in missing
// geography and business classification, registers it in the session
// indexes, and logs the creation. The score and status are always computed
// here, never trusted from the input.
func (s *Session) CreateLead(rec model.Record) *model.Lead {
	now := s.now()
	score := scoring.Score(rec)
	status, color := scoring.StatusForScore(score)

	city, state := resolveLocation(rec)
	location := rec.Location
	if location == "" && city != "" && state != "" {
		location = city + ", " + state
	}

	businessType := rec.BusinessType
	if businessType == "" {
		businessType = classify.BusinessType(rec.Profession, rec.Name)
	}

	source := rec.Source
	if source == "" {
		source = "CSV Import"
	}
	if source == "CSV Import" && rec.SourceDetail != "" {
		source = rec.SourceDetail
	}

	name := rec.Name
	if name == "" {
		name = "Unknown"
	}
	company := rec.Company
	if company == "" {
		company = rec.Name
	}
	owner := rec.Owner
	if owner == "" {
		owner = DefaultOwner
	}
	timeline := rec.DecisionTimeline
	if timeline == "" {
		timeline = "Unknown"
	}

	budget, _ := strconv.ParseFloat(rec.Budget, 64)

	lead := &model.Lead{
		ID:                  uuid.New().String(),
		Name:                name,
		Email:               rec.Email,
		Phone:               rec.Phone,
		ContactPerson:       rec.ContactPerson,
		Profession:          rec.Profession,
		Company:             company,
		Location:            location,
		City:                city,
		State:               state,
		BusinessType:        businessType,
		BusinessSubcategory: rec.BusinessSubcategory,
		ProductInterested:   rec.ProductInterested,
		ProductPitched:      rec.ProductPitched,
		Budget:              budget,
		Source:              source,
		SourceDetail:        rec.SourceDetail,
		Score:               score,
		Status:              status,
		StatusColor:         color,
		CreatedAt:           now,
		Notes:               rec.Notes,
		Tags:                rec.Tags,
		Owner:               owner,
		EmailOpened:         rec.EmailOpened,
		EmailReplied:        rec.EmailReplied,
		MeetingsAttended:    rec.MeetingsAttended,
		DecisionTimeline:    timeline,
		Website:             rec.Website,
		Address:             rec.Address,
		Pincode:             rec.Pincode,
	}

	s.register(lead)
	return lead
}

// AddLead registers a pre-built lead, such as one from the mock generator.
// The lead keeps its own score and timestamps; only the session indexes and
// counters are updated.
func (s *Session) AddLead(lead model.Lead) *model.Lead {
	l := lead
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.Owner == "" {
		l.Owner = DefaultOwner
	}
	s.register(&l)
	return &l
}

func (s *Session) register(lead *model.Lead) {
	s.leads = append(s.leads, lead)
	s.leadIndex[lead.ID] = lead

	if lead.City != "" {
		s.leadsByCity[lead.City] = append(s.leadsByCity[lead.City], lead.ID)
		s.genStats.ByCity[lead.City]++
	}
	if lead.State != "" {
		s.leadsByState[lead.State] = append(s.leadsByState[lead.State], lead.ID)
		s.genStats.ByState[lead.State]++
	}
	if lead.BusinessType != "" {
		s.leadsByBusinessType[lead.BusinessType] = append(s.leadsByBusinessType[lead.BusinessType], lead.ID)
		s.genStats.ByBusinessType[lead.BusinessType]++
	}

	s.leadSources[lead.Source]++
	s.genStats.ByDate[s.now().Format(model.CloseDateFormat)]++
	switch {
	case lead.Source == "Generated" || strings.HasPrefix(lead.SourceDetail, "Generated from"):
		s.genStats.TotalGenerated++
	case lead.Source == "CSV Import":
		s.genStats.TotalImported++
	default:
		s.genStats.TotalManual++
	}

	s.log.Record("New lead created: "+lead.Name, "lead_creation", lead.ID, lead.Name)
	zap.L().Debug("session: lead registered",
		zap.String("lead_id", lead.ID),
		zap.String("name", lead.Name),
		zap.Int("score", lead.Score),
		zap.String("status", lead.Status),
	)
}

// Lead looks up a lead by ID.
func (s *Session) Lead(id string) (*model.Lead, bool) {
	l, ok := s.leadIndex[id]
	return l, ok
}

// Leads returns the session's leads in creation order.
func (s *Session) Leads() []*model.Lead {
	out := make([]*model.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// LeadsByCity returns the leads registered for a city, in creation order.
func (s *Session) LeadsByCity(city string) []*model.Lead {
	return s.leadsFor(s.leadsByCity[city])
}

// LeadsByState returns the leads registered for a state, in creation order.
func (s *Session) LeadsByState(state string) []*model.Lead {
	return s.leadsFor(s.leadsByState[state])
}

// LeadsByBusinessType returns the leads registered for a business type.
func (s *Session) LeadsByBusinessType(businessType string) []*model.Lead {
	return s.leadsFor(s.leadsByBusinessType[businessType])
}

func (s *Session) leadsFor(ids []string) []*model.Lead {
	out := make([]*model.Lead, 0, len(ids))
	for _, id := range ids {
		if l, ok := s.leadIndex[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

// LeadSummary counts leads by status tier.
type LeadSummary struct {
	TotalLeads int            `json:"total_leads"`
	Status     map[string]int `json:"status"`
}

// LeadSummary aggregates the session's leads by status tier.
func (s *Session) LeadSummary() LeadSummary {
	summary := LeadSummary{
		TotalLeads: len(s.leads),
		Status:     make(map[string]int),
	}
	for _, l := range s.leads {
		summary.Status[l.Status]++
	}
	return summary
}

// CreateDeal derives a deal from a lead and buckets it in the pipeline.
func (s *Session) CreateDeal(leadID string, opts pipeline.DealOptions) (*model.Deal, error) {
	lead, ok := s.leadIndex[leadID]
	if !ok {
		return nil, eris.Errorf("session: unknown lead %s", leadID)
	}
	if opts.Now.IsZero() {
		opts.Now = s.now()
	}

	deal := pipeline.NewDeal(*lead, opts)
	if deal.Owner == "" {
		deal.Owner = DefaultOwner
	}
	d := &deal
	s.deals[d.ID] = d
	s.dealOrder = append(s.dealOrder, d.ID)
	s.pipeline.Add(d)

	s.log.Record("New deal created: "+d.Name, "deal_creation", d.ID, d.Name)
	return d, nil
}

// Deal looks up a deal by ID.
func (s *Session) Deal(id string) (*model.Deal, bool) {
	d, ok := s.deals[id]
	return d, ok
}

// Deals returns the session's deals in creation order.
func (s *Session) Deals() []*model.Deal {
	out := make([]*model.Deal, 0, len(s.dealOrder))
	for _, id := range s.dealOrder {
		out = append(out, s.deals[id])
	}
	return out
}

// MoveDealStage transitions a deal to a new stage, updating its probability
// and the pipeline buckets atomically.
func (s *Session) MoveDealStage(dealID, newStage string) (*model.Deal, error) {
	deal, ok := s.deals[dealID]
	if !ok {
		return nil, eris.Errorf("session: unknown deal %s", dealID)
	}
	oldStage := deal.Stage
	if err := s.pipeline.Transition(deal, newStage, s.now()); err != nil {
		return nil, err
	}
	if newStage != oldStage {
		s.log.Record("Deal moved from "+oldStage+" to "+newStage+": "+deal.Name,
			"deal_stage_change", deal.ID, deal.Name)
	}
	return deal, nil
}

// PipelineSummary aggregates deal counts and value per stage.
func (s *Session) PipelineSummary() pipeline.Summary {
	return s.pipeline.Summarize(s.deals)
}

// Forecast projects deals expected to close within horizonDays.
func (s *Session) Forecast(horizonDays int) pipeline.Forecast {
	return pipeline.BuildForecast(s.Deals(), horizonDays, s.now())
}

// Pipeline exposes the session's pipeline for stage inspection.
func (s *Session) Pipeline() *pipeline.Pipeline { return s.pipeline }

// CreateTask records a to-do item and logs it.
func (s *Session) CreateTask(title, dueDate, assignedTo, relatedTo, relatedType, priority, notes string) model.Task {
	if assignedTo == "" {
		assignedTo = DefaultOwner
	}
	if priority == "" {
		priority = "Medium"
	}
	task := model.Task{
		ID:          uuid.New().String(),
		Title:       title,
		DueDate:     dueDate,
		AssignedTo:  assignedTo,
		RelatedTo:   relatedTo,
		RelatedType: relatedType,
		Priority:    priority,
		Notes:       notes,
		Status:      "Open",
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, task)
	s.log.Record("New task created: "+task.Title, "task_creation", task.ID, task.Title)
	return task
}

// Tasks returns the session's tasks in creation order.
func (s *Session) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// ScheduleMeeting records a meeting and logs it.
func (s *Session) ScheduleMeeting(title, date, meetingTime string, durationMinutes int, attendees []string, location, notes, relatedTo, relatedType string) model.Meeting {
	if location == "" {
		location = "Virtual"
	}
	meeting := model.Meeting{
		ID:          uuid.New().String(),
		Title:       title,
		Date:        date,
		Time:        meetingTime,
		Duration:    durationMinutes,
		Attendees:   attendees,
		Location:    location,
		Notes:       notes,
		RelatedTo:   relatedTo,
		RelatedType: relatedType,
		Status:      "Scheduled",
		CreatedAt:   s.now(),
	}
	s.meetings = append(s.meetings, meeting)
	s.log.Record("New meeting scheduled: "+meeting.Title, "meeting_creation", meeting.ID, meeting.Title)
	return meeting
}

// Meetings returns the session's meetings in creation order.
func (s *Session) Meetings() []model.Meeting {
	out := make([]model.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

// RecordResponse updates the metrics after a generated response.
func (s *Session) RecordResponse(customerName string, elapsed time.Duration) {
	s.metrics.ResponsesGenerated++
	s.metrics.responseTimes = append(s.metrics.responseTimes, elapsed)
	if customerName != "" {
		s.metrics.customersEngaged[customerName] = struct{}{}
	}
}

// RecordConversationSaved bumps the saved-conversation counter.
func (s *Session) RecordConversationSaved() {
	s.metrics.ConversationsSaved++
}

// resolveLocation fills city and state from the combined location string and
// the region table when the explicit fields are missing.
func resolveLocation(rec model.Record) (city, state string) {
	city, state = rec.City, rec.State
	if rec.Location != "" && (city == "" || state == "") {
		parts := strings.Split(rec.Location, ",")
		if len(parts) >= 2 {
			if city == "" {
				city = strings.TrimSpace(parts[0])
			}
			if state == "" {
				state = strings.TrimSpace(parts[1])
			}
		}
	}
	if city != "" && state == "" {
		state = refdata.StateForCity(city)
	}
	return city, state
}
