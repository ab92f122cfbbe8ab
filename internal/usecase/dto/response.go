package dto

import "github.com/nearby-restaurants/internal/domain"

// RestaurantsResponse - successful search envelope
type RestaurantsResponse struct {
	Success bool           `json:"success"`
	Results []domain.Place `json:"results"`
	Meta    SearchMeta     `json:"meta"`
}

// SearchMeta echoes the effective search parameters.
type SearchMeta struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Radius        int     `json:"radius"`
	ResultsLength int     `json:"resultsLength"`
}

// IndexResponse lists the public endpoints.
type IndexResponse struct {
	Endpoints []string `json:"endpoints"`
}
