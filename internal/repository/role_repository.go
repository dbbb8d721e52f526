package repository

import (
	"context"
	"errors"
	"time"

	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RoleRepository defines the interface for role data operations.
type RoleRepository interface {
	Insert(ctx context.Context, role *models.Role) error
	FindByRoleID(ctx context.Context, roleID string) (*models.Role, error)
	FindAll(ctx context.Context) ([]models.Role, error)
}

// roleRepository implements RoleRepository using MongoDB.
type roleRepository struct {
	collection *mongo.Collection
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db *mongo.Database) RoleRepository {
	return &roleRepository{
		collection: db.Collection("roles"),
	}
}

// Insert stores a new role.
func (r *roleRepository) Insert(ctx context.Context, role *models.Role) error {
	role.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, role)
	if err != nil {
		return err
	}

	role.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByRoleID retrieves a role by its role id (e.g. PROJECT_ADMIN).
func (r *roleRepository) FindByRoleID(ctx context.Context, roleID string) (*models.Role, error) {
	var role models.Role
	err := r.collection.FindOne(ctx, bson.M{"roleId": roleID}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}

	return &role, nil
}

// FindAll returns all roles.
func (r *roleRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "roleId", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var roles []models.Role
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}

	if roles == nil {
		roles = []models.Role{}
	}

	return roles, nil
}
