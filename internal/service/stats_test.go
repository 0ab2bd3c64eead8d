package service

import (
	"context"
	"errors"
	"testing"

	"oxvocab/internal/domain"
	"oxvocab/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Stats(t *testing.T) {
	entries := []domain.ProgressEntry{
		testutil.NewTestEntry(7, testutil.NewTestWord(1, "abandon", domain.LevelB2), 6, 3),
		testutil.NewTestEntry(7, testutil.NewTestWord(2, "ability", domain.LevelA2), 15, 0),
		testutil.NewTestEntry(7, testutil.NewTestWord(3, "able", domain.LevelA2), 8, 1),
	}
	attempts := []domain.Attempt{{ID: 3, UserID: 7, WordID: 3}}

	mockWords := new(testutil.MockWordRepository)
	mockProgress := new(testutil.MockProgressRepository)
	mockAttempts := new(testutil.MockAttemptRepository)

	mockProgress.On("ListByUser", mock.Anything, int64(7)).Return(entries, nil)
	mockAttempts.On("Recent", mock.Anything, int64(7), 10).Return(attempts, nil)
	mockWords.On("CountWords", mock.Anything, []domain.Level{domain.LevelA1}).Return(900, nil)
	mockWords.On("CountWords", mock.Anything, []domain.Level{domain.LevelA2}).Return(850, nil)
	mockWords.On("CountWords", mock.Anything, []domain.Level{domain.LevelB1}).Return(0, errors.New("timeout"))
	mockWords.On("CountWords", mock.Anything, []domain.Level{domain.LevelB2}).Return(700, nil)
	mockWords.On("CountWords", mock.Anything, []domain.Level{domain.LevelC1}).Return(600, nil)

	service := NewStatsService(mockWords, mockProgress, mockAttempts, testutil.NewTestLogger())
	stats, err := service.Stats(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, stats.Progress, 3)
	assert.Equal(t, attempts, stats.RecentAttempts)
	assert.Equal(t, domain.LevelStat{Learned: 0, Total: 900}, stats.LevelStats["A1"])
	assert.Equal(t, domain.LevelStat{Learned: 1, Total: 850}, stats.LevelStats["A2"])
	assert.Equal(t, domain.LevelStat{Learned: 1, Total: 700}, stats.LevelStats["B2"])
	assert.Equal(t, domain.LevelStat{Learned: 0, Total: 600}, stats.LevelStats["C1"])
	assert.NotContains(t, stats.LevelStats, "B1")

	mockWords.AssertExpectations(t)
	mockProgress.AssertExpectations(t)
	mockAttempts.AssertExpectations(t)
}

func TestStatsService_Stats_EmptyUser(t *testing.T) {
	mockWords := new(testutil.MockWordRepository)
	mockProgress := new(testutil.MockProgressRepository)
	mockAttempts := new(testutil.MockAttemptRepository)

	mockProgress.On("ListByUser", mock.Anything, int64(7)).Return(nil, nil)
	mockAttempts.On("Recent", mock.Anything, int64(7), 10).Return(nil, nil)
	mockWords.On("CountWords", mock.Anything, mock.Anything).Return(100, nil)

	service := NewStatsService(mockWords, mockProgress, mockAttempts, testutil.NewTestLogger())
	stats, err := service.Stats(context.Background(), 7)

	require.NoError(t, err)
	assert.NotNil(t, stats.Progress)
	assert.Empty(t, stats.Progress)
	assert.NotNil(t, stats.RecentAttempts)
	assert.Len(t, stats.LevelStats, len(domain.Levels))
}

func TestStatsService_Stats_ProgressError(t *testing.T) {
	mockProgress := new(testutil.MockProgressRepository)
	mockProgress.On("ListByUser", mock.Anything, int64(7)).Return(nil, errors.New("db down"))

	service := NewStatsService(new(testutil.MockWordRepository), mockProgress, new(testutil.MockAttemptRepository), testutil.NewTestLogger())
	stats, err := service.Stats(context.Background(), 7)

	assert.Error(t, err)
	assert.Nil(t, stats)
}
