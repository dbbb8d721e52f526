package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RootProjectExtID is the external id of the root of the project tree.
const RootProjectExtID = "_Root"

// Project represents a node in the hierarchical project tree. Projects are
// addressed by their external id; the Mongo ObjectID is an implementation
// detail.
type Project struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ExtID       string             `json:"extId" bson:"extId" example:"OlegProject"`
	ParentExtID string             `json:"parentExtId,omitempty" bson:"parentExtId,omitempty" example:"_Root"`
	Name        string             `json:"name" bson:"name" example:"oleg project"`
	Archived    bool               `json:"archived" bson:"archived"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// ProjectListResponse is the response for listing active projects.
type ProjectListResponse struct {
	Items []Project `json:"items"`
}
