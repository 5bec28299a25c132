package commands_test

import (
	"errors"
	"testing"

	"airspeed/internal/core/application/usecases/commands"
	"airspeed/internal/core/domain/model/swallow"
	"airspeed/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterSwallowCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterSwallowCommand("EUROPEAN", 0.2)
	require.NoError(t, err)

	mockRepo := new(MockSwallowRepository)
	mockUoW := new(MockSwallowUoW)
	mockFactory := new(MockSwallowUoWFactory)
	mockPublisher := new(MockEventPublisher)

	isRegisteredSwallow := mock.MatchedBy(func(s *swallow.Swallow) bool {
		return s.ID().IsEqual(cmd.SwallowID()) && s.Species() == swallow.European
	})
	isRegisteredEvent := mock.MatchedBy(func(e ports.SwallowEvent) bool {
		return e.Name == ports.SwallowRegisteredEvent &&
			e.SwallowID == cmd.SwallowID().String() &&
			e.Species == "european" &&
			e.IsMigratory &&
			!e.IsTurningBack &&
			e.Speed > 49.99 && e.Speed < 50.01 &&
			!e.OccurredAt.IsZero()
	})

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("SwallowRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, isRegisteredSwallow).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockPublisher.On("Publish", ctx, isRegisteredEvent).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterSwallowCommandHandler(mockFactory, mockPublisher, discardLogger())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestRegisterSwallowCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	var invalidCmd commands.RegisterSwallowCommand

	mockFactory := new(MockSwallowUoWFactory)
	mockPublisher := new(MockEventPublisher)
	handler := commands.NewRegisterSwallowCommandHandler(mockFactory, mockPublisher, discardLogger())

	// Act
	err := handler.Handle(t.Context(), invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrRegisterSwallowCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRegisterSwallowCommandHandler_Handle_Failures(t *testing.T) {
	beginErr := errors.New("connection refused")
	addErr := errors.New("duplicate key")
	commitErr := errors.New("serialization failure")

	testCases := []struct {
		name     string
		setup    func(uow *MockSwallowUoW, repo *MockSwallowRepository)
		expected error
	}{
		{
			name: "begin fails",
			setup: func(uow *MockSwallowUoW, _ *MockSwallowRepository) {
				uow.On("Begin", mock.Anything).Return(beginErr).Once()
			},
			expected: beginErr,
		},
		{
			name: "add fails",
			setup: func(uow *MockSwallowUoW, repo *MockSwallowRepository) {
				uow.On("Begin", mock.Anything).Return(nil).Once()
				uow.On("SwallowRepository").Return(repo).Once()
				repo.On("Add", mock.Anything, mock.Anything).Return(addErr).Once()
				uow.On("Rollback", mock.Anything).Return(nil).Once()
			},
			expected: addErr,
		},
		{
			name: "commit fails",
			setup: func(uow *MockSwallowUoW, repo *MockSwallowRepository) {
				uow.On("Begin", mock.Anything).Return(nil).Once()
				uow.On("SwallowRepository").Return(repo).Once()
				repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
				uow.On("Commit", mock.Anything).Return(commitErr).Once()
				uow.On("Rollback", mock.Anything).Return(nil).Once()
			},
			expected: commitErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			cmd, err := commands.NewRegisterSwallowCommand("african", 0)
			require.NoError(t, err)

			mockRepo := new(MockSwallowRepository)
			mockUoW := new(MockSwallowUoW)
			mockFactory := new(MockSwallowUoWFactory)
			mockPublisher := new(MockEventPublisher)
			mockFactory.On("Create").Return(mockUoW).Once()
			tc.setup(mockUoW, mockRepo)

			handler := commands.NewRegisterSwallowCommandHandler(mockFactory, mockPublisher, discardLogger())

			// Act
			err = handler.Handle(t.Context(), cmd)

			// Assert
			require.ErrorIs(t, err, tc.expected)
			mockUoW.AssertExpectations(t)
			mockRepo.AssertExpectations(t)
			mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterSwallowCommandHandler_Handle_PublishFailureIsNotReturned(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterSwallowCommand("african", 0)
	require.NoError(t, err)

	mockRepo := new(MockSwallowRepository)
	mockUoW := new(MockSwallowUoW)
	mockFactory := new(MockSwallowUoWFactory)
	mockPublisher := new(MockEventPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("SwallowRepository").Return(mockRepo).Once()
	mockRepo.On("Add", ctx, mock.Anything).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockPublisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker unavailable")).Once()

	handler := commands.NewRegisterSwallowCommandHandler(mockFactory, mockPublisher, discardLogger())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockPublisher.AssertExpectations(t)
	assert.True(t, mockUoW.AssertCalled(t, "Commit", ctx))
}
