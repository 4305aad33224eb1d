package models

import "time"

// PresentationProperty is the display-ready property representation.
// Constructed fresh per fetch cycle and never mutated afterwards: missing
// numerics are zeroed, missing booleans are false, images are never empty
// (placeholders fill in), coordinates and the tour URL keep nil for absent.
type PresentationProperty struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Price          float64       `json:"price"`
	Address        string        `json:"address"`
	Location       string        `json:"location"`
	City           string        `json:"city"`
	PropertyType   string        `json:"property_type"`
	ListingType    string        `json:"listing_type"`
	Bedrooms       int           `json:"bedrooms"`
	Bathrooms      int           `json:"bathrooms"`
	Area           float64       `json:"area"`
	Featured       bool          `json:"featured"`
	Published      bool          `json:"published"`
	Exclusive      bool          `json:"exclusive"`
	Images         []string      `json:"images"`
	ImageURL       string        `json:"image_url"`
	Latitude       *float64      `json:"latitude,omitempty"`
	Longitude      *float64      `json:"longitude,omitempty"`
	VirtualTourURL *string       `json:"virtual_tour_url,omitempty"`
	Agent          *AgentProfile `json:"agent,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// PageResult is one materialized catalog page plus the counts callers need
// for pagination controls.
type PageResult struct {
	Items      []PresentationProperty `json:"items"`
	TotalCount int64                  `json:"total_count"`
	TotalPages int                    `json:"total_pages"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
}

type PaginationMeta struct {
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
	Next       *string `json:"next,omitempty"`
	Prev       *string `json:"prev,omitempty"`
}

type PaginatedPropertiesResponse struct {
	Data []PresentationProperty `json:"data"`
	Meta PaginationMeta         `json:"meta"`
}
