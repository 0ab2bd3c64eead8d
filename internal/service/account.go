package service

import (
	"context"
	"fmt"

	"oxvocab/internal/repository"

	"go.uber.org/zap"
)

// AccountService wipes learning data and accounts
type AccountService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	attemptRepo  repository.AttemptRepository
	logger       *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo repository.UserRepository,
	progressRepo repository.ProgressRepository,
	attemptRepo repository.AttemptRepository,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		attemptRepo:  attemptRepo,
		logger:       logger,
	}
}

// DeleteData removes all progress and attempts and resets the score to zero
func (s *AccountService) DeleteData(ctx context.Context, userID int64) error {
	if err := s.clearLearningData(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.ResetScore(ctx, userID); err != nil {
		return fmt.Errorf("reset score: %w", err)
	}

	s.logger.Info("User data deleted", zap.Int64("user_id", userID))
	return nil
}

// DeleteAccount removes all learning data and then the account itself
func (s *AccountService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.clearLearningData(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info("User account deleted", zap.Int64("user_id", userID))
	return nil
}

func (s *AccountService) clearLearningData(ctx context.Context, userID int64) error {
	if err := s.attemptRepo.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	if err := s.progressRepo.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
