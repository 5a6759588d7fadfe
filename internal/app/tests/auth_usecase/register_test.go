package authusecase_test

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
	"notekeeper/internal/domain/services"
)

func TestRegister(t *testing.T) {
	testEmail := "test@example.com"
	testUsername := "testuser"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	generatedUserID := "generated-user-id"

	now := time.Now()
	accessExpires := now.Add(24 * time.Hour)
	accessToken := "access-token-123"

	createdUser := &entities.User{
		ID:           generatedUserID,
		Email:        testEmail,
		Username:     testUsername,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
	}

	tests := []struct {
		name          string
		setupMocks    func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService)
		expectedToken string
		expectedErr   error
	}{
		{
			name: "Success - user registered and token issued",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Email == testEmail && u.Username == testUsername && u.PasswordHash == hashedPassword
				})).Return(createdUser, nil).Once()
				mockTokenSvc.On("GenerateAccessToken", mock.Anything, generatedUserID, testUsername).
					Return(accessToken, accessExpires, nil).Once()
			},
			expectedToken: accessToken,
			expectedErr:   nil,
		},
		{
			name: "Error - email already registered",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				mockUserRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, services.ErrEmailAlreadyExists).Once()
			},
			expectedToken: "",
			expectedErr:   services.ErrEmailAlreadyExists,
		},
		{
			name: "Error - password hashing failed",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockPasswordSvc.On("Hash", mock.Anything, testPassword).
					Return("", services.ErrHashingFailed).Once()
			},
			expectedToken: "",
			expectedErr:   services.ErrHashingFailed,
		},
		{
			name: "Error - token generation failed",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				mockUserRepo.On("Create", mock.Anything, mock.Anything).Return(createdUser, nil).Once()
				mockTokenSvc.On("GenerateAccessToken", mock.Anything, generatedUserID, testUsername).
					Return("", time.Time{}, services.ErrGeneratingJWTToken).Once()
			},
			expectedToken: "",
			expectedErr:   services.ErrGeneratingJWTToken,
		},
		{
			name: "Error - storage failure surfaces to caller",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockPasswordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				mockUserRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedToken: "",
			expectedErr:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mockUserRepository)
			mockPasswordSvc := new(mockPasswordService)
			mockTokenSvc := new(mockTokenService)
			tt.setupMocks(mockUserRepo, mockPasswordSvc, mockTokenSvc)

			useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc)
			token, err := useCase.Register(context.Background(), testEmail, testUsername, testPassword)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else if tt.expectedToken != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			} else {
				require.Error(t, err)
				assert.Empty(t, token)
			}

			mockUserRepo.AssertExpectations(t)
			mockPasswordSvc.AssertExpectations(t)
			mockTokenSvc.AssertExpectations(t)
		})
	}
}
