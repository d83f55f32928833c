package discount

import (
	"bassik_backend/model"
	"bassik_backend/utils"
)

// staticCatalogs is the built-in per-brand offer list used until a venue gets
// admin-configured rows. Admin-configured discounts always take priority.
var staticCatalogs = map[string]model.Discounts{
	"alehouse": {
		{
			Code:        "alehouse-flat-15",
			Title:       "Flat 15% off the bill",
			Description: "15% off the total bill for tables booked online",
			LimitPerDay: 25,
			Active:      true,
		},
		{
			Code:        "alehouse-happy-hour",
			Title:       "Happy hour: 1+1 on pints",
			Description: "Buy one get one on draught pints",
			LimitPerDay: 40,
			StartTime:   utils.Ptr("12:00"),
			EndTime:     utils.Ptr("19:00"),
			Active:      true,
		},
	},
	"kiik69": {
		{
			Code:        "kiik-10-percent",
			Title:       "10% off on total bill",
			Description: "10% off for online reservations",
			LimitPerDay: 20,
			Active:      true,
		},
		{
			Code:        "kiik-ladies-night",
			Title:       "Ladies night: 2 free cocktails",
			Description: "Two complimentary cocktails per table",
			LimitPerDay: 15,
			StartTime:   utils.Ptr("20:00"),
			EndTime:     utils.Ptr("01:00"),
			Active:      true,
		},
	},
	"firewater": {
		{
			Code:        "firewater-sundowner",
			Title:       "Sundowner combo at 499",
			Description: "Snack platter plus two drinks until sunset",
			LimitPerDay: 30,
			EndTime:     utils.Ptr("19:30"),
			Active:      true,
		},
	},
}

// StaticCatalog serves the hardcoded per-brand fallback list.
type StaticCatalog struct{}

func (StaticCatalog) Catalog(venue model.Venue) (model.Discounts, error) {
	defs, ok := staticCatalogs[venue.Slug]
	if !ok {
		return model.Discounts{}, nil
	}
	out := make(model.Discounts, len(defs))
	copy(out, defs)
	for i := range out {
		out[i].VenueId = venue.ID
	}
	return out, nil
}

// KnownBrand reports whether slug has a built-in fallback list.
func KnownBrand(slug string) bool {
	_, ok := staticCatalogs[slug]
	return ok
}
