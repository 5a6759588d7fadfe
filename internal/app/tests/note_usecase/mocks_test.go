package noteusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notekeeper/internal/domain/entities"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (string, error) {
	args := m.Called(ctx, note)
	return args.String(0), args.Error(1)
}

func (m *mockNoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, noteID, userID string, title, content *string) error {
	return m.Called(ctx, noteID, userID, title, content).Error(0)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	return m.Called(ctx, noteID, userID).Error(0)
}
