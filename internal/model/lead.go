// Package model defines the core records of the sales assistant: customer
// input records, leads, deals, pipeline stages, activities, tasks, and
// meetings.
package model

import (
	"strconv"
	"time"
)

// Record is a raw customer record as it arrives from a CSV row, a form, or
// the mock generator. Every field is optional; a lead only requires Name for
// display. Budget stays a string so that unparseable values can degrade to
// the documented scoring default instead of failing at decode time.
type Record struct {
	Name                string   `json:"name"`
	Email               string   `json:"email,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	ContactPerson       string   `json:"contact_person,omitempty"`
	Profession          string   `json:"profession,omitempty"`
	Company             string   `json:"company,omitempty"`
	Location            string   `json:"location,omitempty"`
	City                string   `json:"city,omitempty"`
	State               string   `json:"state,omitempty"`
	BusinessType        string   `json:"business_type,omitempty"`
	BusinessSubcategory string   `json:"business_subcategory,omitempty"`
	ProductInterested   string   `json:"product_interested,omitempty"`
	ProductPitched      string   `json:"product_pitched,omitempty"`
	Budget              string   `json:"budget,omitempty"`
	Source              string   `json:"source,omitempty"`
	SourceDetail        string   `json:"source_detail,omitempty"`
	DecisionTimeline    string   `json:"decision_timeline,omitempty"`
	EmailOpened         int      `json:"email_opened,omitempty"`
	EmailReplied        int      `json:"email_replied,omitempty"`
	MeetingsAttended    int      `json:"meetings_attended,omitempty"`
	Notes               string   `json:"notes,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	Owner               string   `json:"owner,omitempty"`
	Website             string   `json:"website,omitempty"`
	Address             string   `json:"address,omitempty"`
	Pincode             string   `json:"pincode,omitempty"`
}

// Lead is a prospective customer with a computed interest score. The score
// and status tier are always recomputed from the source fields at creation
// time; they are never carried in from the input record.
type Lead struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	ContactPerson       string     `json:"contact_person,omitempty"`
	Profession          string     `json:"profession,omitempty"`
	Company             string     `json:"company,omitempty"`
	Location            string     `json:"location,omitempty"`
	City                string     `json:"city,omitempty"`
	State               string     `json:"state,omitempty"`
	BusinessType        string     `json:"business_type,omitempty"`
	BusinessSubcategory string     `json:"business_subcategory,omitempty"`
	ProductInterested   string     `json:"product_interested,omitempty"`
	ProductPitched      string     `json:"product_pitched,omitempty"`
	Budget              float64    `json:"budget"`
	Source              string     `json:"source,omitempty"`
	SourceDetail        string     `json:"source_detail,omitempty"`
	Score               int        `json:"score"`
	Status              string     `json:"status"`
	StatusColor         string     `json:"status_color,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	LastContacted       *time.Time `json:"last_contacted,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	Tags                []string   `json:"tags,omitempty"`
	Owner               string     `json:"owner,omitempty"`
	EmailOpened         int        `json:"email_opened,omitempty"`
	EmailReplied        int        `json:"email_replied,omitempty"`
	MeetingsAttended    int        `json:"meetings_attended,omitempty"`
	DecisionTimeline    string     `json:"decision_timeline,omitempty"`
	Website             string     `json:"website,omitempty"`
	Address             string     `json:"address,omitempty"`
	Pincode             string     `json:"pincode,omitempty"`
}

// Touch records a contact with the lead.
func (l *Lead) Touch(at time.Time) {
	t := at
	l.LastContacted = &t
}

// Record converts the lead back to the raw record shape consumed by the
// recommendation engine and the response prompt builder.
func (l *Lead) Record() Record {
	return Record{
		Name:                l.Name,
		Email:               l.Email,
		Phone:               l.Phone,
		ContactPerson:       l.ContactPerson,
		Profession:          l.Profession,
		Company:             l.Company,
		Location:            l.Location,
		City:                l.City,
		State:               l.State,
		BusinessType:        l.BusinessType,
		BusinessSubcategory: l.BusinessSubcategory,
		ProductInterested:   l.ProductInterested,
		ProductPitched:      l.ProductPitched,
		Budget:              strconv.FormatFloat(l.Budget, 'f', -1, 64),
		Source:              l.Source,
		SourceDetail:        l.SourceDetail,
		DecisionTimeline:    l.DecisionTimeline,
		EmailOpened:         l.EmailOpened,
		EmailReplied:        l.EmailReplied,
		MeetingsAttended:    l.MeetingsAttended,
		Notes:               l.Notes,
		Tags:                l.Tags,
		Owner:               l.Owner,
		Website:             l.Website,
		Address:             l.Address,
		Pincode:             l.Pincode,
	}
}
