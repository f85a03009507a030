package dto

import "github.com/notas-claras/agenda-api/internal/models"

// FacetOption is one selectable value of a filter dimension with its item count.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FilterOptions groups the facets shown in the filter panel.
type FilterOptions struct {
	Subjects []FacetOption `json:"subjects"`
	Status   []FacetOption `json:"status"`
	Types    []FacetOption `json:"types"`
}

// SearchResponse carries the filtered event list plus its facet breakdown.
type SearchResponse struct {
	Items   []models.Event `json:"items"`
	Total   int            `json:"total"`
	Options FilterOptions  `json:"options"`
}
