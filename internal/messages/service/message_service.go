package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/devfolio/portfolio-backend/internal/messages/domain"
)

// ErrInvalid marks a submission rejected before any store write.
var ErrInvalid = errors.New("messages: invalid input")

type Repository interface {
	List(ctx context.Context) ([]domain.Message, error)
	Create(ctx context.Context, draft domain.Draft) (string, error)
	Delete(ctx context.Context, id string) error
}

// SubmitInput is the raw contact form.
type SubmitInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body" validate:"required"`
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// Submit validates and stores a contact message. A malformed email fails
// locally; nothing reaches the store.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Body = strings.TrimSpace(in.Body)

	if err := s.validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return s.repo.Create(ctx, domain.Draft{
		Name:  in.Name,
		Email: in.Email,
		Body:  in.Body,
	})
}

// List returns all messages for the admin dashboard, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Message, error) {
	return s.repo.List(ctx)
}

// Delete removes a message; repeat deletes succeed.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id required", ErrInvalid)
	}
	return s.repo.Delete(ctx, id)
}
