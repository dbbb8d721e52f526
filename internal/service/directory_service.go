package service

import (
	"context"

	"invitehub/internal/directory"
	"invitehub/internal/models"
)

// DirectoryService exposes the read side of the directory for the admin UI.
type DirectoryService struct {
	dir directory.Directory
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(dir directory.Directory) *DirectoryService {
	return &DirectoryService{dir: dir}
}

// ListProjects returns all non-archived projects.
func (s *DirectoryService) ListProjects(ctx context.Context) (*models.ProjectListResponse, error) {
	projects, err := s.dir.ListActiveProjects(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ProjectListResponse{Items: projects}, nil
}

// ListRoles returns all roles.
func (s *DirectoryService) ListRoles(ctx context.Context) (*models.RoleListResponse, error) {
	roles, err := s.dir.ListAvailableRoles(ctx)
	if err != nil {
		return nil, err
	}
	return &models.RoleListResponse{Items: roles}, nil
}
