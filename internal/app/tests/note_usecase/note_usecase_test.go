package noteusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/app"
	"notekeeper/internal/domain/entities"
)

const (
	testUserID = "7d9f0a4e-59c2-4f6a-a1ce-0f6dd2b3e111"
	testNoteID = "3c2b8e1a-6f4d-4e5b-9a7c-1d2e3f4a5b6c"
)

func strPtr(s string) *string { return &s }

func TestCreateNote(t *testing.T) {
	t.Run("Success - note created for its owner", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.UserID == testUserID && n.Title == "title" && n.Content == "content"
		})).Return(testNoteID, nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		noteID, err := useCase.CreateNote(context.Background(), testUserID, "title", "content")

		require.NoError(t, err)
		assert.Equal(t, testNoteID, noteID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - storage failure surfaces to caller", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).
			Return("", errors.New("connection refused")).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		noteID, err := useCase.CreateNote(context.Background(), testUserID, "title", "content")

		require.Error(t, err)
		assert.Empty(t, noteID)
		mockRepo.AssertExpectations(t)
	})
}

func TestListNotes(t *testing.T) {
	t.Run("Success - returns owner notes", func(t *testing.T) {
		now := time.Now()
		expected := []*entities.Note{
			{ID: "note-1", UserID: testUserID, Title: "first", CreatedAt: now, ModifiedAt: now},
			{ID: "note-2", UserID: testUserID, Title: "second", CreatedAt: now, ModifiedAt: now},
		}

		mockRepo := new(mockNoteRepository)
		mockRepo.On("ListByUserID", mock.Anything, testUserID).Return(expected, nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		notes, err := useCase.ListNotes(context.Background(), testUserID)

		require.NoError(t, err)
		assert.Equal(t, expected, notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - storage failure surfaces to caller", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("ListByUserID", mock.Anything, testUserID).
			Return(nil, errors.New("connection refused")).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		notes, err := useCase.ListNotes(context.Background(), testUserID)

		require.Error(t, err)
		assert.Nil(t, notes)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateNote(t *testing.T) {
	t.Run("Success - partial update passes fields through", func(t *testing.T) {
		title := strPtr("new title")

		mockRepo := new(mockNoteRepository)
		mockRepo.On("Update", mock.Anything, testNoteID, testUserID, title, (*string)(nil)).
			Return(nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.UpdateNote(context.Background(), testUserID, testNoteID, title, nil)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - malformed note ID reads as not found without touching storage", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.UpdateNote(context.Background(), testUserID, "not-a-uuid", strPtr("x"), nil)

		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error - foreign note reads as not found", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Update", mock.Anything, testNoteID, testUserID, mock.Anything, mock.Anything).
			Return(entities.ErrNoteNotFound).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.UpdateNote(context.Background(), testUserID, testNoteID, strPtr("x"), nil)

		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteNote(t *testing.T) {
	t.Run("Success - owned note deleted", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Delete", mock.Anything, testNoteID, testUserID).Return(nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.DeleteNote(context.Background(), testUserID, testNoteID)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - malformed note ID reads as not found without touching storage", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.DeleteNote(context.Background(), testUserID, "42")

		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error - foreign note reads as not found", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Delete", mock.Anything, testNoteID, testUserID).
			Return(entities.ErrNoteNotFound).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.DeleteNote(context.Background(), testUserID, testNoteID)

		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		mockRepo.AssertExpectations(t)
	})
}
