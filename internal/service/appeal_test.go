package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maslahat/backend/internal/domain"
	"github.com/maslahat/backend/internal/queue/task"
)

func TestAppealService_Submit_ExpertNotFound(t *testing.T) {
	appeals := new(appealsRepoMock)
	experts := new(expertsRepoMock)
	queue := new(enqueuerMock)
	svc := newAppealService(appeals, experts, queue)

	expertID := uuid.New()
	experts.On("GetOneByID", mock.Anything, expertID).Return(nil, domain.ErrNotFound).Once()

	_, err := svc.Submit(context.Background(), SubmitAppealInput{
		ExpertID:    expertID,
		FullName:    "Aziz Karimov",
		PhoneNumber: "+998901234567",
		Description: "Need a consultation",
	})

	assert.ErrorIs(t, err, ErrExpertNotFound)
	appeals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAppealService_Submit_Success(t *testing.T) {
	appeals := new(appealsRepoMock)
	experts := new(expertsRepoMock)
	queue := new(enqueuerMock)
	svc := newAppealService(appeals, experts, queue)

	expert := &domain.Expert{
		ID:        uuid.New(),
		FirstName: "Dilnoza",
		LastName:  "Yusupova",
	}

	experts.On("GetOneByID", mock.Anything, expert.ID).Return(expert, nil).Once()
	appeals.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Appeal) bool {
		return a.ExpertID == expert.ID && a.FullName == "Aziz Karimov"
	})).Return(nil).Once()
	queue.On("Enqueue", mock.Anything, mock.MatchedBy(func(tk *asynq.Task) bool {
		if tk.Type() != task.NotifyAppealTaskName {
			return false
		}
		var data task.NotifyAppeal
		if err := json.Unmarshal(tk.Payload(), &data); err != nil {
			return false
		}
		return data.ExpertName == "Dilnoza Yusupova" && data.FullName == "Aziz Karimov"
	})).Return(nil).Once()

	appeal, err := svc.Submit(context.Background(), SubmitAppealInput{
		ExpertID:    expert.ID,
		FullName:    "Aziz Karimov",
		PhoneNumber: "+998901234567",
		Description: "Need a consultation",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, appeal.ID)
	appeals.AssertExpectations(t)
	queue.AssertExpectations(t)
}

func TestCommentService_Submit_RequiresVerifiedUser(t *testing.T) {
	comments := new(commentsRepoMock)
	experts := new(expertsRepoMock)
	users := new(usersRepoMock)
	svc := newCommentService(comments, experts, users)

	user := &domain.User{ID: uuid.New(), AuthStatus: false}
	users.On("GetOneByID", mock.Anything, user.ID).Return(user, nil).Once()

	_, err := svc.Submit(context.Background(), SubmitCommentInput{
		ExpertID:    uuid.New(),
		UserID:      user.ID,
		Degree:      5,
		Description: "great expert",
	})

	assert.ErrorIs(t, err, ErrUserNotVerified)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_Submit_Success(t *testing.T) {
	comments := new(commentsRepoMock)
	experts := new(expertsRepoMock)
	users := new(usersRepoMock)
	svc := newCommentService(comments, experts, users)

	user := &domain.User{ID: uuid.New(), AuthStatus: true}
	expert := &domain.Expert{ID: uuid.New()}

	users.On("GetOneByID", mock.Anything, user.ID).Return(user, nil).Once()
	experts.On("GetOneByID", mock.Anything, expert.ID).Return(expert, nil).Once()
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.ExpertID == expert.ID && c.UserID == user.ID && c.Degree == 4
	})).Return(nil).Once()

	comment, err := svc.Submit(context.Background(), SubmitCommentInput{
		ExpertID:    expert.ID,
		UserID:      user.ID,
		Degree:      4,
		Description: "helpful session",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, comment.ID)
	comments.AssertExpectations(t)
}
