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

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	// Insert stores a new project. Returns ErrDuplicateProjectName when a
	// sibling with the same name already exists (authoritative check: this
	// is backed by the unique (parentExtId, name) index, not a read).
	Insert(ctx context.Context, project *models.Project) error
	FindByExtID(ctx context.Context, extID string) (*models.Project, error)
	FindActive(ctx context.Context) ([]models.Project, error)
	ExtIDExists(ctx context.Context, extID string) (bool, error)
}

// projectRepository implements ProjectRepository using MongoDB.
type projectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{
		collection: db.Collection("projects"),
	}
}

// Insert stores a new project.
func (r *projectRepository) Insert(ctx context.Context, project *models.Project) error {
	project.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateProjectName
		}
		return err
	}

	project.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByExtID retrieves a project by its external id.
func (r *projectRepository) FindByExtID(ctx context.Context, extID string) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"extId": extID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// FindActive returns all non-archived projects.
func (r *projectRepository) FindActive(ctx context.Context) ([]models.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"archived": false}, options.Find().SetSort(bson.D{{Key: "extId", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// ExtIDExists reports whether a project with the given external id exists.
func (r *projectRepository) ExtIDExists(ctx context.Context, extID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"extId": extID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
