package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Chat is one entry in the assistant conversation log. Each assistant
// interaction writes two: the inbound message and the generated reply.
// Entries are not linked to each other.
type Chat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Role      string             `bson:"role" json:"role"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// ChatRequest is the assistant endpoint's request body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant endpoint's response body.
type ChatResponse struct {
	Reply string `json:"reply"`
}
