package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Agent is the persisted agent record from the agents collection.
type Agent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AgentID   string             `bson:"agent_id" json:"id"`
	FullName  string             `bson:"full_name" json:"full_name"`
	Position  string             `bson:"position" json:"position"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	PhotoURL  string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// AgentProfile is the public subset of an agent record embedded into a
// presentation property.
type AgentProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url,omitempty"`
}
