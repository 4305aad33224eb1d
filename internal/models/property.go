package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is the persisted record as stored in the properties collection.
// Optional columns stay pointers so that "absent" is distinguishable from a
// legitimate zero (0/0 is a real coordinate, "" is not a missing tour URL).
type Property struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PropertyID     string             `bson:"property_id" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Price          float64            `bson:"price" json:"price"`
	Address        string             `bson:"address" json:"address"`
	City           string             `bson:"city" json:"city"`
	PropertyType   string             `bson:"property_type" json:"property_type"`
	ListingType    string             `bson:"listing_type" json:"listing_type"`
	Bedrooms       *int               `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms      *int               `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Area           *float64           `bson:"area,omitempty" json:"area,omitempty"`
	Featured       *bool              `bson:"featured,omitempty" json:"featured,omitempty"`
	Published      *bool              `bson:"published,omitempty" json:"published,omitempty"`
	Exclusive      *bool              `bson:"exclusive,omitempty" json:"exclusive,omitempty"`
	Images         []string           `bson:"images,omitempty" json:"images,omitempty"`
	AgentID        string             `bson:"agent_id,omitempty" json:"agent_id,omitempty"`
	Latitude       *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude      *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	VirtualTourURL *string            `bson:"virtual_tour_url,omitempty" json:"virtual_tour_url,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// DefaultPropertyType is substituted when a record carries a property type
// outside the known enumeration.
const DefaultPropertyType = "apartment"

var knownPropertyTypes = map[string]struct{}{
	"apartment": {},
	"house":     {},
	"villa":     {},
	"office":    {},
	"land":      {},
	"studio":    {},
}

var knownListingTypes = map[string]struct{}{
	"sale": {},
	"rent": {},
}

var knownCities = map[string]struct{}{
	"Sofia":   {},
	"Plovdiv": {},
	"Varna":   {},
	"Burgas":  {},
	"Ruse":    {},
}

func KnownPropertyType(s string) bool {
	_, ok := knownPropertyTypes[s]
	return ok
}

func KnownListingType(s string) bool {
	_, ok := knownListingTypes[s]
	return ok
}

func KnownCity(s string) bool {
	_, ok := knownCities[s]
	return ok
}
