package main

import (
	"context"
	"time"

	"invitehub/internal/config"
	"invitehub/internal/database"
	"invitehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting migration...")

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	logger.Log.Info("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Projects indexes. The (parentExtId, name) unique index is what makes
	// duplicate-name detection during provisioning authoritative.
	createIndex(ctx, db, "projects", bson.D{{Key: "extId", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "projects", bson.D{
		{Key: "parentExtId", Value: 1},
		{Key: "name", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "projects", bson.D{{Key: "archived", Value: 1}}, nil)

	// Roles indexes
	createIndex(ctx, db, "roles", bson.D{{Key: "roleId", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Role assignments indexes
	createIndex(ctx, db, "role_assignments", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "role_assignments", bson.D{
		{Key: "userId", Value: 1},
		{Key: "roleId", Value: 1},
		{Key: "projectExtId", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Invitations indexes
	createIndex(ctx, db, "invitations", bson.D{{Key: "token", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "invitations", bson.D{{Key: "expiresAt", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		logger.Log.WithFields(map[string]interface{}{
			"collection": collection,
			"error":      err.Error(),
		}).Warn("Failed to create index")
		return
	}

	logger.Log.WithFields(map[string]interface{}{
		"collection": collection,
		"index":      name,
	}).Info("Created index")
}

func ptrBool(b bool) *bool {
	return &b
}
