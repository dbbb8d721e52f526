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

// InvitationRepository is the durable side of the invitation registry. Every
// mutation is persisted before the call returns; the in-memory registry
// layers on top of it.
type InvitationRepository interface {
	// Insert stores a new invitation record. Returns ErrDuplicateToken if a
	// record with the same token already exists.
	Insert(ctx context.Context, record *models.InvitationRecord) error
	FindByToken(ctx context.Context, token string) (*models.InvitationRecord, error)
	FindAll(ctx context.Context) ([]models.InvitationRecord, error)
	// DeleteByToken removes a record and returns it, or ErrInvitationNotFound.
	DeleteByToken(ctx context.Context, token string) (*models.InvitationRecord, error)
	// DeleteExpired removes all records with an expiry in the past.
	DeleteExpired(ctx context.Context) (int, error)
}

// invitationRepository implements InvitationRepository using MongoDB.
type invitationRepository struct {
	collection *mongo.Collection
}

// NewInvitationRepository creates a new InvitationRepository.
func NewInvitationRepository(db *mongo.Database) InvitationRepository {
	return &invitationRepository{
		collection: db.Collection("invitations"),
	}
}

// Insert stores a new invitation record.
func (r *invitationRepository) Insert(ctx context.Context, record *models.InvitationRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateToken
		}
		return err
	}

	record.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByToken retrieves an invitation record by token.
func (r *invitationRepository) FindByToken(ctx context.Context, token string) (*models.InvitationRecord, error) {
	var record models.InvitationRecord
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &record, nil
}

// FindAll returns every stored invitation record in creation order.
func (r *invitationRepository) FindAll(ctx context.Context) ([]models.InvitationRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.InvitationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.InvitationRecord{}
	}

	return records, nil
}

// DeleteByToken removes a record and returns the removed record.
func (r *invitationRepository) DeleteByToken(ctx context.Context, token string) (*models.InvitationRecord, error) {
	var record models.InvitationRecord
	err := r.collection.FindOneAndDelete(ctx, bson.M{"token": token}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &record, nil
}

// DeleteExpired removes all expired invitation records.
func (r *invitationRepository) DeleteExpired(ctx context.Context) (int, error) {
	filter := bson.M{
		"expiresAt": bson.M{"$gt": time.Time{}, "$lte": time.Now()},
	}

	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(result.DeletedCount), nil
}
