package application_test

import (
	"testing"

	"github.com/mexanik619/College-Placement-Website/internal/application"

	"github.com/stretchr/testify/assert"
)

func sampleDetails() []application.ApplicationDetailResponse {
	return []application.ApplicationDetailResponse{
		{ApplicationID: 1, Status: application.StatusPending, StudentName: "Asha"},
		{ApplicationID: 2, Status: application.StatusInterview, StudentName: "Ravi"},
		{ApplicationID: 3, Status: application.StatusPending, StudentName: "Meera"},
		{ApplicationID: 4, Status: application.StatusRejected, StudentName: "Dev"},
	}
}

func TestFilterByStatus(t *testing.T) {
	t.Run("keeps only exact matches in order", func(t *testing.T) {
		got := application.FilterByStatus(sampleDetails(), application.StatusPending)
		assert.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].ApplicationID)
		assert.Equal(t, uint(3), got[1].ApplicationID)
	})

	t.Run("all returns everything", func(t *testing.T) {
		details := sampleDetails()
		got := application.FilterByStatus(details, application.StatusFilterAll)
		assert.Equal(t, details, got)
	})

	t.Run("empty filter behaves like all", func(t *testing.T) {
		details := sampleDetails()
		assert.Equal(t, details, application.FilterByStatus(details, ""))
	})

	t.Run("no matches yields empty, not nil panic", func(t *testing.T) {
		got := application.FilterByStatus(sampleDetails(), application.StatusSelected)
		assert.Empty(t, got)
	})

	t.Run("empty input yields an array, not nil", func(t *testing.T) {
		assert.NotNil(t, application.FilterByStatus(nil, application.StatusFilterAll))
		assert.NotNil(t, application.FilterByStatus(nil, ""))
		assert.NotNil(t, application.FilterByStatus([]application.ApplicationDetailResponse{}, application.StatusFilterAll))
	})

	t.Run("input is left untouched", func(t *testing.T) {
		details := sampleDetails()
		got := application.FilterByStatus(details, application.StatusFilterAll)
		got[0].Status = application.StatusSelected
		assert.Equal(t, application.StatusPending, details[0].Status)
	})
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{
		application.StatusPending,
		application.StatusShortlisted,
		application.StatusInterview,
		application.StatusSelected,
		application.StatusRejected,
	} {
		assert.True(t, application.IsValidStatus(s), s)
	}

	for _, s := range []string{"", "all", "Pending", "hired", "PENDING "} {
		assert.False(t, application.IsValidStatus(s), s)
	}
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, application.PolicyForward, application.ParsePolicy("forward"))
	assert.Equal(t, application.PolicyFreeForm, application.ParsePolicy("free"))
	assert.Equal(t, application.PolicyFreeForm, application.ParsePolicy(""))
	assert.Equal(t, application.PolicyFreeForm, application.ParsePolicy("strict"))
}
