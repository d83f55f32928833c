package discount

import "bassik_backend/model"

// Usage is a read-only snapshot of the counters for one venue: daily counts
// for the requested date and lifetime counts, both keyed by discount code.
type Usage struct {
	Daily map[string]int
	Total map[string]int
}

// Availability is the evaluated state of one discount.
type Availability struct {
	Code        string
	Title       string
	Description string
	Used        int
	Max         *int // nil means unbounded
	Available   bool
	InWindow    bool
	WindowLabel string
}

// Evaluate projects the catalog and counters into per-discount availability.
// It never mutates anything. Inactive definitions are skipped entirely. When
// a lifetime cap is set it is the binding constraint and the daily counter is
// ignored; otherwise a positive LimitPerDay binds against the daily counter.
// timeSlot may be empty, which skips window gating.
func Evaluate(defs model.Discounts, usage Usage, timeSlot string) []Availability {
	out := make([]Availability, 0, len(defs))

	for _, def := range defs {
		if !def.Active {
			continue
		}

		var max *int
		used := usage.Daily[def.Code]
		if def.MaxClaims != nil && *def.MaxClaims > 0 {
			max = def.MaxClaims
			used = usage.Total[def.Code]
		} else if def.LimitPerDay > 0 {
			limit := def.LimitPerDay
			max = &limit
		}

		out = append(out, Availability{
			Code:        def.Code,
			Title:       def.Title,
			Description: def.Description,
			Used:        used,
			Max:         max,
			Available:   max == nil || used < *max,
			InWindow:    inWindow(def.StartTime, def.EndTime, timeSlot),
			WindowLabel: windowLabel(def.StartTime, def.EndTime),
		})
	}

	return out
}

// inWindow checks slot against [start, end). Zero-padded "HH:MM" values
// compare correctly as strings. A missing bound leaves that side open; a
// start after the end wraps past midnight.
func inWindow(start, end *string, slot string) bool {
	if slot == "" {
		return true
	}
	s, e := "", ""
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}

	switch {
	case s == "" && e == "":
		return true
	case s == "":
		return slot < e
	case e == "":
		return slot >= s
	case s < e:
		return slot >= s && slot < e
	case s > e:
		return slot >= s || slot < e
	default:
		return true
	}
}

func windowLabel(start, end *string) string {
	switch {
	case start != nil && end != nil:
		return *start + " - " + *end
	case start != nil:
		return "From " + *start
	case end != nil:
		return "Until " + *end
	default:
		return "All day"
	}
}

// SlotsLeft returns the remaining claim capacity, or nil when unbounded.
func (a Availability) SlotsLeft() *int {
	if a.Max == nil {
		return nil
	}
	left := *a.Max - a.Used
	if left < 0 {
		left = 0
	}
	return &left
}
