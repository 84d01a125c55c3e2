package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maslahat/backend/internal/domain"
	"github.com/maslahat/backend/internal/repository"

	"github.com/google/uuid"
)

type commentService struct {
	commentRepository repository.Comments
	expertRepository  repository.Experts
	userRepository    repository.Users
}

func newCommentService(commentRepository repository.Comments, expertRepository repository.Experts, userRepository repository.Users) *commentService {
	return &commentService{
		commentRepository: commentRepository,
		expertRepository:  expertRepository,
		userRepository:    userRepository,
	}
}

// Submit stores an expert review. Only verified accounts may review.
func (s *commentService) Submit(ctx context.Context, input SubmitCommentInput) (*domain.Comment, error) {
	user, err := s.userRepository.GetOneByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}
	if !user.AuthStatus {
		return nil, ErrUserNotVerified
	}

	if _, err := s.expertRepository.GetOneByID(ctx, input.ExpertID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, fmt.Errorf("get expert by id failed: %w", err)
	}

	commentID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate comment id failed: %w", err)
	}

	comment := &domain.Comment{
		ID:          commentID,
		ExpertID:    input.ExpertID,
		UserID:      input.UserID,
		Degree:      input.Degree,
		Description: input.Description,
	}

	if err := s.commentRepository.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment failed: %w", err)
	}

	return comment, nil
}
