package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maslahat/backend/internal/domain"
	"github.com/maslahat/backend/internal/queue/client"
	"github.com/maslahat/backend/internal/queue/task"
	"github.com/maslahat/backend/internal/repository"

	"github.com/google/uuid"
)

type appealService struct {
	appealRepository repository.Appeals
	expertRepository repository.Experts
	queue            client.Enqueuer
}

func newAppealService(appealRepository repository.Appeals, expertRepository repository.Experts, queue client.Enqueuer) *appealService {
	return &appealService{
		appealRepository: appealRepository,
		expertRepository: expertRepository,
		queue:            queue,
	}
}

func (s *appealService) Submit(ctx context.Context, input SubmitAppealInput) (*domain.Appeal, error) {
	expert, err := s.expertRepository.GetOneByID(ctx, input.ExpertID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, fmt.Errorf("get expert by id failed: %w", err)
	}

	appealID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate appeal id failed: %w", err)
	}

	appeal := &domain.Appeal{
		ID:          appealID,
		ExpertID:    input.ExpertID,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Description: input.Description,
	}

	if err := s.appealRepository.Create(ctx, appeal); err != nil {
		return nil, fmt.Errorf("create appeal failed: %w", err)
	}

	notifyTask, err := task.NewNotifyAppealTask(task.NotifyAppeal{
		AppealID:    appeal.ID.String(),
		ExpertName:  expert.FirstName + " " + expert.LastName,
		FullName:    appeal.FullName,
		PhoneNumber: appeal.PhoneNumber,
		Description: appeal.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("build notify appeal task failed: %w", err)
	}
	if err := s.queue.Enqueue(ctx, notifyTask); err != nil {
		return nil, fmt.Errorf("enqueue notify appeal task failed: %w", err)
	}

	return appeal, nil
}
