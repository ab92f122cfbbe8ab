package domain

import "encoding/json"

// DefaultRadiusMeters is used when a search does not specify a radius.
const DefaultRadiusMeters = 5000

// PlaceTypeMealTakeaway is the only venue category the service searches for.
const PlaceTypeMealTakeaway = "meal_takeaway"

// Place is a single upstream search record, passed through to clients
// uninterpreted.
type Place = json.RawMessage

// SearchQuery - validated coordinates of a nearby search
type SearchQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters *int
}

// EffectiveRadius returns the requested radius, or DefaultRadiusMeters when
// the radius is absent or zero.
func (q SearchQuery) EffectiveRadius() int {
	if q.RadiusMeters == nil || *q.RadiusMeters == 0 {
		return DefaultRadiusMeters
	}
	return *q.RadiusMeters
}
