package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		params     PaginationParams
		wantOffset int
		wantLimit  int
	}{
		{"first page", PaginationParams{Page: 1, PageSize: 20}, 0, 20},
		{"third page", PaginationParams{Page: 3, PageSize: 10}, 20, 10},
		{"zero page", PaginationParams{Page: 0, PageSize: 10}, 0, 10},
		{"unbounded", PaginationParams{}, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.params.Offset())
			assert.Equal(t, tt.wantLimit, tt.params.Limit())
		})
	}
}

func TestEvent_RegistrationOpen(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Event{}).RegistrationOpen(now), "no opening time means open")
	assert.True(t, (&Event{RegistrationOpensAt: &past}).RegistrationOpen(now))
	assert.True(t, (&Event{RegistrationOpensAt: &now}).RegistrationOpen(now), "opening instant is inclusive")
	assert.False(t, (&Event{RegistrationOpensAt: &future}).RegistrationOpen(now))
}

func TestValidationErrorsWrapInvalidInput(t *testing.T) {
	for _, err := range []error{ErrInvalidEmail, ErrInvalidAge, ErrInvalidStudyYear, ErrInvalidName} {
		assert.True(t, errors.Is(err, ErrInvalidInput), err.Error())
	}
	assert.False(t, errors.Is(ErrRegistrationNotOpen, ErrInvalidInput))
}

func TestWriteResult(t *testing.T) {
	assert.Equal(t, StatusSucceeded, WriteResult(true))
	assert.Equal(t, StatusUnchanged, WriteResult(false))
}

func TestPlanSponsorChange(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		tier     int
		want     SponsorChange
	}{
		{"stays a non-sponsor", 0, 0, SponsorUnchanged},
		{"same tier", 2, 2, SponsorUnchanged},
		{"becomes a sponsor", 0, 3, SponsorAdded},
		{"stops sponsoring", 2, 0, SponsorRemoved},
		{"changes tier", 1, 3, SponsorRetiered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanSponsorChange(tt.previous, tt.tier))
		})
	}
}
