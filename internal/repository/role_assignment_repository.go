package repository

import (
	"context"
	"time"

	"invitehub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoleAssignmentRepository defines the interface for role assignment data operations.
type RoleAssignmentRepository interface {
	Insert(ctx context.Context, assignment *models.RoleAssignment) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.RoleAssignment, error)
}

// roleAssignmentRepository implements RoleAssignmentRepository using MongoDB.
type roleAssignmentRepository struct {
	collection *mongo.Collection
}

// NewRoleAssignmentRepository creates a new RoleAssignmentRepository.
func NewRoleAssignmentRepository(db *mongo.Database) RoleAssignmentRepository {
	return &roleAssignmentRepository{
		collection: db.Collection("role_assignments"),
	}
}

// Insert stores a new role assignment.
func (r *roleAssignmentRepository) Insert(ctx context.Context, assignment *models.RoleAssignment) error {
	assignment.GrantedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return err
	}

	assignment.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByUserID returns all role assignments held by a user.
func (r *roleAssignmentRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.RoleAssignment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.RoleAssignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}

	if assignments == nil {
		assignments = []models.RoleAssignment{}
	}

	return assignments, nil
}
