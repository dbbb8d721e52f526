package main

import (
	"context"
	"time"

	"invitehub/internal/config"
	"invitehub/internal/database"
	"invitehub/internal/directory"
	"invitehub/internal/models"
	"invitehub/pkg/auth"
	"invitehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting seed...")

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	seedProjects(ctx, mongoDB.Database)
	seedRoles(ctx, mongoDB.Database)
	adminID := seedAdmin(ctx, mongoDB.Database)
	seedAdminAssignment(ctx, mongoDB.Database, adminID)

	logger.Log.Info("Seed completed successfully!")
}

func seedProjects(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("projects")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to clear projects")
	}

	now := time.Now()
	projects := []interface{}{
		models.Project{
			ExtID:     models.RootProjectExtID,
			Name:      "Root project",
			CreatedAt: now,
		},
		models.Project{
			ExtID:       "TestDrive",
			ParentExtID: models.RootProjectExtID,
			Name:        "Test drive",
			CreatedAt:   now,
		},
	}

	result, err := collection.InsertMany(ctx, projects)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to seed projects")
	}
	logger.Log.WithField("count", len(result.InsertedIDs)).Info("Seeded projects")
}

func seedRoles(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("roles")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to clear roles")
	}

	now := time.Now()
	roles := []interface{}{
		models.Role{
			RoleID: "PROJECT_ADMIN",
			Name:   "Project administrator",
			Permissions: []string{
				directory.PermissionCreateSubProject,
				directory.PermissionChangeUserRoles,
				directory.PermissionViewProject,
				directory.PermissionRunBuild,
			},
			CreatedAt: now,
		},
		models.Role{
			RoleID: "PROJECT_DEVELOPER",
			Name:   "Project developer",
			Permissions: []string{
				directory.PermissionViewProject,
				directory.PermissionRunBuild,
			},
			CreatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, roles)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to seed roles")
	}
	logger.Log.WithField("count", len(result.InsertedIDs)).Info("Seeded roles")
}

func seedAdmin(ctx context.Context, db *mongo.Database) primitive.ObjectID {
	collection := db.Collection("users")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to clear users")
	}

	password, _ := auth.HashPassword("admin123")
	now := time.Now()

	result, err := collection.InsertOne(ctx, models.User{
		Email:     "admin@example.com",
		Username:  "admin",
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to seed admin user")
	}

	logger.Log.Info("Seeded admin user")
	return result.InsertedID.(primitive.ObjectID)
}

func seedAdminAssignment(ctx context.Context, db *mongo.Database, adminID primitive.ObjectID) {
	collection := db.Collection("role_assignments")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to clear role assignments")
	}

	// Global PROJECT_ADMIN assignment: empty projectExtId covers everything.
	_, err := collection.InsertOne(ctx, models.RoleAssignment{
		UserID:    adminID,
		RoleID:    "PROJECT_ADMIN",
		GrantedAt: time.Now(),
	})
	if err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to seed admin role assignment")
	}

	logger.Log.Info("Seeded global admin role assignment")
}
