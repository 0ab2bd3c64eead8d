package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"oxvocab/internal/domain"
	"oxvocab/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubTokens struct {
	err error
}

func (s stubTokens) GenerateAccessToken(userID int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-user", nil
}

func newTestAuthService(repo *testutil.MockUserRepository) *AuthService {
	return NewAuthService(repo, stubTokens{}, bcrypt.MinCost, testutil.NewTestLogger())
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*testutil.MockUserRepository)
		expectedError error
	}{
		{
			name:     "success",
			username: " budi ",
			password: "secret1",
			setupMock: func(m *testutil.MockUserRepository) {
				m.On("Create", mock.Anything, "budi", mock.MatchedBy(func(hash string) bool {
					return bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")) == nil
				})).Return(testutil.NewTestUser(1, "budi", 0), nil)
			},
		},
		{
			name:          "missing password",
			username:      "budi",
			password:      "",
			setupMock:     func(m *testutil.MockUserRepository) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "short username",
			username:      "bu",
			password:      "secret1",
			setupMock:     func(m *testutil.MockUserRepository) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "short password",
			username:      "budi",
			password:      "12345",
			setupMock:     func(m *testutil.MockUserRepository) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "password too long for bcrypt",
			username:      "budi",
			password:      strings.Repeat("x", 73),
			setupMock:     func(m *testutil.MockUserRepository) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:     "username taken",
			username: "budi",
			password: "secret1",
			setupMock: func(m *testutil.MockUserRepository) {
				m.On("Create", mock.Anything, "budi", mock.Anything).Return(nil, domain.ErrAlreadyExists)
			},
			expectedError: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			tt.setupMock(mockRepo)
			service := newTestAuthService(mockRepo)

			session, err := service.Register(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "token-for-user", session.Token)
				assert.Equal(t, "budi", session.User.Username)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := testutil.NewTestUser(1, "budi", 5)
	stored.PasswordHash = string(hash)

	tests := []struct {
		name          string
		password      string
		mockUser      *domain.User
		mockError     error
		expectedError error
	}{
		{name: "success", password: "secret1", mockUser: stored},
		{name: "wrong password", password: "secret2", mockUser: stored, expectedError: domain.ErrUnauthorized},
		{name: "unknown user", password: "secret1", mockError: domain.ErrNotFound, expectedError: domain.ErrUnauthorized},
		{name: "database error", password: "secret1", mockError: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("GetByUsername", mock.Anything, "budi").Return(tt.mockUser, tt.mockError)
			service := newTestAuthService(mockRepo)

			session, err := service.Login(context.Background(), "budi", tt.password)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, session)
			case tt.mockError != nil:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrUnauthorized)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(1), session.User.ID)
				assert.Equal(t, 5, session.User.TotalScore)
				assert.NotEmpty(t, session.Token)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := testutil.NewTestUser(1, "budi", 0)
	stored.PasswordHash = string(hash)

	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("GetByUsername", mock.Anything, "budi").Return(stored, nil)
	service := NewAuthService(mockRepo, stubTokens{err: errors.New("sign failed")}, bcrypt.MinCost, testutil.NewTestLogger())

	session, err := service.Login(context.Background(), "budi", "secret1")

	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestAuthService_IncrementScore(t *testing.T) {
	tests := []struct {
		name          string
		delta         int
		callsRepo     bool
		expectedError error
	}{
		{name: "one point", delta: 1, callsRepo: true},
		{name: "zero is allowed", delta: 0, callsRepo: true},
		{name: "negative is rejected", delta: -3, expectedError: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			if tt.callsRepo {
				mockRepo.On("IncrementScore", mock.Anything, int64(1), tt.delta).
					Return(testutil.NewTestUser(1, "budi", 10+tt.delta), nil)
			}
			service := newTestAuthService(mockRepo)

			user, err := service.IncrementScore(context.Background(), 1, tt.delta)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "IncrementScore", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 10+tt.delta, user.TotalScore)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
