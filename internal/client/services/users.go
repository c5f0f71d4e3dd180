package services

import (
	"context"
	"fmt"

	"github.com/nmorozs/quizadmin/internal/client/api"
	"github.com/nmorozs/quizadmin/internal/client/models"
)

// UserService lists platform users so an operator can locate a user ID
// before a progression lookup.
type UserService struct {
	client api.Client
}

func NewUserService(client api.Client) *UserService {
	return &UserService{client: client}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
