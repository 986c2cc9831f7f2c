package domain_test

import (
	"testing"
	"time"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoute(t *testing.T) {
	tests := []struct {
		fragment string
		page     domain.Page
		id       string
	}{
		{"", domain.PageDashboard, ""},
		{"#", domain.PageDashboard, ""},
		{"#offers", domain.PageOffers, ""},
		{"#offers?id=Q-2024-001", domain.PageOffers, "Q-2024-001"},
		{"#/customers?id=CUST-1&tab=notes", domain.PageCustomers, "CUST-1"},
		{"#unknown?id=1", domain.PageDashboard, ""},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			route := domain.ResolveRoute(tt.fragment)

			assert.Equal(t, tt.page, route.Page)
			assert.Equal(t, tt.id, route.ID)
			assert.Equal(t, tt.page.Title(), route.Title)
		})
	}
}

func TestDates(t *testing.T) {
	d, err := domain.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", domain.FormatDate(d))

	_, err = domain.ParseDate("29/02/2024")
	assert.Error(t, err)

	local := time.Date(2024, 3, 1, 23, 59, 0, 0, time.FixedZone("AST", 3*3600))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), domain.DateOf(local))

	assert.Empty(t, domain.FormatDate(time.Time{}))
	assert.Empty(t, domain.FormatDatePtr(nil))
}
