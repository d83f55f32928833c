package discount

import (
	"testing"

	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_DailyCap(t *testing.T) {
	defs := model.Discounts{
		{Code: "kiik-10-percent", Title: "10% off", LimitPerDay: 20, Active: true},
	}

	tests := []struct {
		name          string
		used          int
		wantAvailable bool
	}{
		{name: "one below cap", used: 19, wantAvailable: true},
		{name: "at cap", used: 20, wantAvailable: false},
		{name: "no usage row yet", used: 0, wantAvailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage := Usage{Daily: map[string]int{}, Total: map[string]int{}}
			if tt.used > 0 {
				usage.Daily["kiik-10-percent"] = tt.used
			}

			got := Evaluate(defs, usage, "")
			require.Len(t, got, 1)
			assert.Equal(t, tt.used, got[0].Used)
			require.NotNil(t, got[0].Max)
			assert.Equal(t, 20, *got[0].Max)
			assert.Equal(t, tt.wantAvailable, got[0].Available)
		})
	}
}

func TestEvaluate_LifetimeCapWinsOverDaily(t *testing.T) {
	defs := model.Discounts{
		{Code: "launch-special", LimitPerDay: 5, MaxClaims: utils.Ptr(100), Active: true},
	}
	// daily counter is far past its cap, lifetime counter is not
	usage := Usage{
		Daily: map[string]int{"launch-special": 50},
		Total: map[string]int{"launch-special": 99},
	}

	got := Evaluate(defs, usage, "")
	require.Len(t, got, 1)
	assert.Equal(t, 99, got[0].Used)
	require.NotNil(t, got[0].Max)
	assert.Equal(t, 100, *got[0].Max)
	assert.True(t, got[0].Available)

	usage.Total["launch-special"] = 100
	got = Evaluate(defs, usage, "")
	require.Len(t, got, 1)
	assert.False(t, got[0].Available)
}

func TestEvaluate_NoCapsIsUnbounded(t *testing.T) {
	defs := model.Discounts{
		{Code: "open-offer", LimitPerDay: 0, Active: true},
		{Code: "negative-limit", LimitPerDay: -3, Active: true},
	}
	usage := Usage{Daily: map[string]int{"open-offer": 9999}, Total: map[string]int{}}

	got := Evaluate(defs, usage, "")
	require.Len(t, got, 2)
	for _, a := range got {
		assert.Nil(t, a.Max)
		assert.True(t, a.Available)
		assert.Nil(t, a.SlotsLeft())
	}
}

func TestEvaluate_SkipsInactive(t *testing.T) {
	defs := model.Discounts{
		{Code: "live", Active: true},
		{Code: "paused", Active: false},
	}

	got := Evaluate(defs, Usage{Daily: map[string]int{}, Total: map[string]int{}}, "")
	require.Len(t, got, 1)
	assert.Equal(t, "live", got[0].Code)
}

func TestInWindow(t *testing.T) {
	tests := []struct {
		name  string
		start *string
		end   *string
		slot  string
		want  bool
	}{
		{name: "no bounds", slot: "03:00", want: true},
		{name: "before start", start: utils.Ptr("12:00"), end: utils.Ptr("19:00"), slot: "11:59", want: false},
		{name: "at start", start: utils.Ptr("12:00"), end: utils.Ptr("19:00"), slot: "12:00", want: true},
		{name: "inside", start: utils.Ptr("12:00"), end: utils.Ptr("19:00"), slot: "18:59", want: true},
		{name: "at end is out", start: utils.Ptr("12:00"), end: utils.Ptr("19:00"), slot: "19:00", want: false},
		{name: "only start, before", start: utils.Ptr("21:00"), slot: "20:30", want: false},
		{name: "only start, after", start: utils.Ptr("21:00"), slot: "23:45", want: true},
		{name: "only end, before", end: utils.Ptr("19:00"), slot: "10:00", want: true},
		{name: "only end, at end", end: utils.Ptr("19:00"), slot: "19:00", want: false},
		{name: "overnight, late evening", start: utils.Ptr("20:00"), end: utils.Ptr("01:00"), slot: "23:30", want: true},
		{name: "overnight, after midnight", start: utils.Ptr("20:00"), end: utils.Ptr("01:00"), slot: "00:45", want: true},
		{name: "overnight, closed hours", start: utils.Ptr("20:00"), end: utils.Ptr("01:00"), slot: "14:00", want: false},
		{name: "empty slot skips gating", start: utils.Ptr("12:00"), end: utils.Ptr("19:00"), slot: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inWindow(tt.start, tt.end, tt.slot))
		})
	}
}

func TestWindowLabel(t *testing.T) {
	assert.Equal(t, "12:00 - 19:00", windowLabel(utils.Ptr("12:00"), utils.Ptr("19:00")))
	assert.Equal(t, "From 21:00", windowLabel(utils.Ptr("21:00"), nil))
	assert.Equal(t, "Until 19:00", windowLabel(nil, utils.Ptr("19:00")))
	assert.Equal(t, "All day", windowLabel(nil, nil))
}

func TestSlotsLeft(t *testing.T) {
	a := Availability{Used: 18, Max: utils.Ptr(20)}
	require.NotNil(t, a.SlotsLeft())
	assert.Equal(t, 2, *a.SlotsLeft())

	// overshoot from legacy data clamps to zero
	b := Availability{Used: 25, Max: utils.Ptr(20)}
	require.NotNil(t, b.SlotsLeft())
	assert.Equal(t, 0, *b.SlotsLeft())
}
