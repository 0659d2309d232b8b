package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hichamcc/Memory-Training-Game/internal/errors"
	"github.com/hichamcc/Memory-Training-Game/internal/game"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
	"github.com/hichamcc/Memory-Training-Game/internal/testutil/mocks"
)

func newTestPracticeService(repo *mocks.MockResultsRepository, maxSessions int, opts ...PracticeOption) *practiceService {
	base := []PracticeOption{WithEngineOptions(game.WithManualTimer())}
	svc := NewPracticeService(repo, time.Hour, maxSessions, append(base, opts...)...)
	return svc.(*practiceService)
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestStartSession_UnknownTactic(t *testing.T) {
	svc := newTestPracticeService(new(mocks.MockResultsRepository), 4)

	_, _, err := svc.StartSession(context.Background(), "mind-reading", models.Beginner)
	assertAppError(t, err, apperrors.ErrCodeNotFound)
}

func TestStartSession_InvalidDifficulty(t *testing.T) {
	svc := newTestPracticeService(new(mocks.MockResultsRepository), 4)

	_, _, err := svc.StartSession(context.Background(), "linking-method", models.DifficultyLevel("Legendary"))
	assertAppError(t, err, apperrors.ErrCodeValidation)
}

func TestStartSession_BeginsMemorizing(t *testing.T) {
	svc := newTestPracticeService(new(mocks.MockResultsRepository), 4)

	id, state, err := svc.StartSession(context.Background(), "linking-method", models.Beginner)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, models.PhaseMemorize, state.Phase)
	assert.False(t, state.Learning)
	assert.NotEmpty(t, state.Display)
}

func TestStartSession_LearningVariantIdles(t *testing.T) {
	svc := newTestPracticeService(new(mocks.MockResultsRepository), 4)

	id, state, err := svc.StartSession(context.Background(), "peg-system", models.Beginner)
	require.NoError(t, err)
	assert.True(t, state.Learning)
	assert.NotEmpty(t, state.Reference)

	state, err = svc.Begin(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, state.Learning)
	assert.NotEmpty(t, state.Display)
}

func TestStartSession_CapsActiveSessions(t *testing.T) {
	svc := newTestPracticeService(new(mocks.MockResultsRepository), 1)

	_, _, err := svc.StartSession(context.Background(), "linking-method", models.Beginner)
	require.NoError(t, err)

	_, _, err = svc.StartSession(context.Background(), "chunking", models.Beginner)
	assertAppError(t, err, apperrors.ErrCodeConflict)
}

func TestGetState_UnknownSession(t *testing.T) {
	svc := newTestPracticeService(new(mocks.MockResultsRepository), 4)

	_, err := svc.GetState(context.Background(), "no-such-session")
	assertAppError(t, err, apperrors.ErrCodeNotFound)
}

func TestSessions_ExpireAfterTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestPracticeService(new(mocks.MockResultsRepository), 4,
		WithPracticeClock(func() time.Time { return now }),
	)

	id, _, err := svc.StartSession(context.Background(), "linking-method", models.Beginner)
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	_, err = svc.GetState(context.Background(), id)
	require.NoError(t, err, "session is still alive within the TTL")

	now = now.Add(2 * time.Hour)
	_, err = svc.GetState(context.Background(), id)
	assertAppError(t, err, apperrors.ErrCodeNotFound)
}

func TestSubmit_BeforeRecallRejected(t *testing.T) {
	svc := newTestPracticeService(new(mocks.MockResultsRepository), 4)

	id, _, err := svc.StartSession(context.Background(), "linking-method", models.Beginner)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), id, "1", "apple")
	assertAppError(t, err, apperrors.ErrCodeConflict)
}

func TestReset_ReturnsToIntro(t *testing.T) {
	repo := new(mocks.MockResultsRepository)
	svc := newTestPracticeService(repo, 4)

	id, _, err := svc.StartSession(context.Background(), "linking-method", models.Beginner)
	require.NoError(t, err)

	state, err := svc.Reset(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseIntro, state.Phase)

	repo.AssertNotCalled(t, "AppendHighScore", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "AppendSession", mock.Anything, mock.Anything)
}

func TestPersist_StoresScoreAndSessionRecord(t *testing.T) {
	repo := new(mocks.MockResultsRepository)
	svc := newTestPracticeService(repo, 4)

	var storedScore models.HighScore
	var storedSession models.GameSession
	repo.On("AppendHighScore", mock.Anything, mock.AnythingOfType("models.HighScore")).
		Run(func(args mock.Arguments) { storedScore = args.Get(1).(models.HighScore) }).
		Return(nil)
	repo.On("AppendSession", mock.Anything, mock.AnythingOfType("models.GameSession")).
		Run(func(args mock.Arguments) { storedSession = args.Get(1).(models.GameSession) }).
		Return(int64(1), nil)

	started := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ended := started.Add(45 * time.Second)
	svc.persist("linking-method")(game.Outcome{
		VariantID:      "linking-method",
		Difficulty:     models.Intermediate,
		Items:          []string{"apple", "banana", "car"},
		Answers:        []string{"apple", "banana", "truck"},
		CorrectCount:   2,
		TotalCount:     3,
		ElapsedSeconds: 45,
		Score:          models.ScoreResult{Score: 67, Accuracy: 66.666},
		StartedAt:      started,
		EndedAt:        ended,
	})

	repo.AssertExpectations(t)

	assert.Len(t, storedScore.ID, 26, "time-sortable ulid identifier")
	assert.Equal(t, "linking-method", storedScore.TacticID)
	assert.Equal(t, 67, storedScore.Score)
	assert.Equal(t, 67, storedScore.Accuracy, "accuracy is rounded once for storage")
	assert.Equal(t, models.Intermediate, storedScore.Difficulty)
	assert.Equal(t, ended, storedScore.CreatedAt)

	assert.Equal(t, []string{"apple", "banana", "car"}, storedSession.Items)
	assert.Equal(t, []string{"apple", "banana", "truck"}, storedSession.Answers)
	assert.Equal(t, started, storedSession.StartedAt)
	assert.Equal(t, ended, storedSession.EndedAt)
	assert.Equal(t, 67, storedSession.Score)
}

func TestPersist_StorageFailureIsSwallowed(t *testing.T) {
	repo := new(mocks.MockResultsRepository)
	svc := newTestPracticeService(repo, 4)

	repo.On("AppendHighScore", mock.Anything, mock.Anything).Return(assert.AnError)
	repo.On("AppendSession", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	assert.NotPanics(t, func() {
		svc.persist("chunking")(game.Outcome{
			Difficulty: models.Beginner,
			Score:      models.ScoreResult{Score: 10, Accuracy: 50},
		})
	})
	repo.AssertExpectations(t)
}
