package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edurishi/sales-assistant/internal/model"
)

func TestCustomer_AllFields(t *testing.T) {
	p := Profile{
		Record: model.Record{
			Profession: "Teacher",
			Location:   "Pune, Maharashtra",
			Budget:     "3500",
		},
		Age:       30,
		Interests: "AI, Robotics, Coding, Astronomy",
	}

	got := Customer(p)
	require.Len(t, got, 5)
	assert.Equal(t, "Professional in Teacher", got[0])
	assert.Equal(t, "Millennial (30 years old)", got[1])
	assert.Equal(t, "Based in Pune, Maharashtra", got[2])
	assert.Equal(t, "Interested in AI, Robotics, Coding", got[3]) // first three only
	assert.Equal(t, "Mid-range buyer ($3,500 budget)", got[4])
}

func TestCustomer_GenerationBrackets(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{20, "Gen Z (20 years old)"},
		{24, "Gen Z (24 years old)"},
		{25, "Millennial (25 years old)"},
		{39, "Millennial (39 years old)"},
		{40, "Gen X (40 years old)"},
		{54, "Gen X (54 years old)"},
		{55, "Baby Boomer (55 years old)"},
		{70, "Baby Boomer (70 years old)"},
	}
	for _, tt := range tests {
		got := Customer(Profile{Age: tt.age})
		require.Len(t, got, 1)
		assert.Equal(t, tt.want, got[0])
	}
}

func TestCustomer_BudgetTiers(t *testing.T) {
	tests := []struct {
		budget string
		want   string
	}{
		{"500", "Budget-conscious ($500 budget)"},
		{"999", "Budget-conscious ($999 budget)"},
		{"1000", "Mid-range buyer ($1,000 budget)"},
		{"4999", "Mid-range buyer ($4,999 budget)"},
		{"5000", "Premium buyer ($5,000 budget)"},
		{"250000", "Premium buyer ($250,000 budget)"},
	}
	for _, tt := range tests {
		got := Customer(Profile{Record: model.Record{Budget: tt.budget}})
		require.Len(t, got, 1, tt.budget)
		assert.Equal(t, tt.want, got[0])
	}
}

func TestCustomer_MissingFieldsContributeNothing(t *testing.T) {
	assert.Empty(t, Customer(Profile{}))
	assert.Empty(t, Customer(Profile{Record: model.Record{Budget: "not a number"}}))
	assert.Empty(t, Customer(Profile{Record: model.Record{Budget: "0"}}))
}

func TestSalesScript_Personalized(t *testing.T) {
	script := SalesScript(Profile{
		Record:    model.Record{Name: "Priya Sharma", Profession: "Principal"},
		Interests: "STEM labs",
	})

	assert.Contains(t, script, "# EDURISHI EDUVENTURES Sales Script for Priya Sharma")
	assert.Contains(t, script, "Hello Priya Sharma")
	assert.Contains(t, script, "helping Principals like yourself")
	assert.Contains(t, script, "an interest in STEM labs")
	assert.Contains(t, script, "## Call to Action")
}

func TestSalesScript_Defaults(t *testing.T) {
	script := SalesScript(Profile{})
	assert.Contains(t, script, "Sales Script for Customer")
	assert.Contains(t, script, "professionals like yourself")
	// no interests section body without interests
	assert.Contains(t, script, "## Addressing Interests")
	assert.NotContains(t, script, "I noticed you have an interest")
}
