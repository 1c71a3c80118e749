package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	service "perpusku_backend/internals/features/library/transactions/service"
)

func Test_DaysRented(t *testing.T) {
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		returnDate time.Time
		want       int
	}{
		{
			name:       "three_full_days",
			returnDate: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			want:       3,
		},
		{
			name:       "same_day_return_is_zero_days",
			returnDate: time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC),
			want:       0,
		},
		{
			name:       "partial_day_floors_down",
			returnDate: time.Date(2024, 1, 3, 23, 59, 59, 0, time.UTC),
			want:       2,
		},
		{
			name:       "exactly_24_hours_is_one_day",
			returnDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			want:       1,
		},
		{
			name:       "return_before_issue_clamps_to_zero",
			returnDate: time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC),
			want:       0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.DaysRented(issue, tc.returnDate))
		})
	}
}

func Test_LateFee(t *testing.T) {
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		returnDate time.Time
		ratePerDay float64
		want       float64
	}{
		{
			name:       "three_days_default_rate",
			returnDate: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			ratePerDay: 10,
			want:       30,
		},
		{
			name:       "same_day_no_fee",
			returnDate: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			ratePerDay: 10,
			want:       0,
		},
		{
			name:       "custom_rate",
			returnDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			ratePerDay: 2.5,
			want:       17.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.LateFee(issue, tc.returnDate, tc.ratePerDay))
		})
	}
}
