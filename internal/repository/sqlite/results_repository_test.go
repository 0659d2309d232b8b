package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hichamcc/Memory-Training-Game/internal/db"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
	"github.com/hichamcc/Memory-Training-Game/internal/repository"
	"github.com/hichamcc/Memory-Training-Game/internal/repository/sqlite"
	"github.com/hichamcc/Memory-Training-Game/internal/testutil"
)

type ResultsRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.ResultsRepository
}

func (s *ResultsRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewResultsRepository(s.db.DB)
}

func (s *ResultsRepositorySuite) highScore(id string, tacticID string, score int, difficulty models.DifficultyLevel) models.HighScore {
	return models.HighScore{
		ID:         id,
		TacticID:   tacticID,
		Score:      score,
		Accuracy:   80,
		Difficulty: difficulty,
		CreatedAt:  time.Now().UTC(),
	}
}

func (s *ResultsRepositorySuite) TestAppendAndListHighScores() {
	ctx := context.Background()

	s.Require().NoError(s.repo.AppendHighScore(ctx, s.highScore("a", "linking-method", 120, models.Beginner)))
	s.Require().NoError(s.repo.AppendHighScore(ctx, s.highScore("b", "chunking", 200, models.Advanced)))
	s.Require().NoError(s.repo.AppendHighScore(ctx, s.highScore("c", "linking-method", 150, models.Intermediate)))

	scores, err := s.repo.ListHighScores(ctx, models.HighScoreFilter{})
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Assert().Equal("b", scores[0].ID, "highest score first")
	s.Assert().Equal("c", scores[1].ID)
	s.Assert().Equal("a", scores[2].ID)
	s.Assert().Equal(80, scores[0].Accuracy)
}

func (s *ResultsRepositorySuite) TestListHighScores_Filters() {
	ctx := context.Background()

	s.Require().NoError(s.repo.AppendHighScore(ctx, s.highScore("a", "linking-method", 120, models.Beginner)))
	s.Require().NoError(s.repo.AppendHighScore(ctx, s.highScore("b", "chunking", 200, models.Advanced)))
	s.Require().NoError(s.repo.AppendHighScore(ctx, s.highScore("c", "linking-method", 150, models.Intermediate)))

	scores, err := s.repo.ListHighScores(ctx, models.HighScoreFilter{TacticID: "linking-method"})
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	for _, hs := range scores {
		s.Assert().Equal("linking-method", hs.TacticID)
	}

	scores, err = s.repo.ListHighScores(ctx, models.HighScoreFilter{Difficulty: models.Advanced})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Assert().Equal("b", scores[0].ID)

	scores, err = s.repo.ListHighScores(ctx, models.HighScoreFilter{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Assert().Equal("b", scores[0].ID)
}

func (s *ResultsRepositorySuite) TestHighScores_RetainTopHundred() {
	ctx := context.Background()

	for i := 1; i <= repository.MaxHighScores+5; i++ {
		hs := s.highScore(fmt.Sprintf("id-%03d", i), "peg-system", i, models.Beginner)
		s.Require().NoError(s.repo.AppendHighScore(ctx, hs))
	}

	scores, err := s.repo.ListHighScores(ctx, models.HighScoreFilter{})
	s.Require().NoError(err)
	s.Require().Len(scores, repository.MaxHighScores)
	s.Assert().Equal(repository.MaxHighScores+5, scores[0].Score, "best score survives")
	s.Assert().Equal(6, scores[len(scores)-1].Score, "lowest five were evicted")
}

func (s *ResultsRepositorySuite) gameSession(tacticID string, score int) models.GameSession {
	now := time.Now().UTC()
	return models.GameSession{
		TacticID:   tacticID,
		Difficulty: models.Beginner,
		Items:      []string{"apple", "banana"},
		Answers:    []string{"apple", "pear"},
		StartedAt:  now.Add(-time.Minute),
		EndedAt:    now,
		Score:      score,
		Accuracy:   50,
	}
}

func (s *ResultsRepositorySuite) TestAppendAndListSessions() {
	ctx := context.Background()

	session := s.gameSession("memory-palace", 95)
	id, err := s.repo.AppendSession(ctx, session)
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	sessions, err := s.repo.ListSessions(ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)

	got := sessions[0]
	s.Assert().Equal(id, got.ID)
	s.Assert().Equal("memory-palace", got.TacticID)
	s.Assert().Equal([]string{"apple", "banana"}, got.Items)
	s.Assert().Equal([]string{"apple", "pear"}, got.Answers)
	s.Assert().Equal(95, got.Score)
	s.Assert().WithinDuration(session.EndedAt, got.EndedAt, time.Second)
}

func (s *ResultsRepositorySuite) TestSessions_InsertionOrderPreserved() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.repo.AppendSession(ctx, s.gameSession(fmt.Sprintf("tactic-%d", i), i*10))
		s.Require().NoError(err)
	}

	sessions, err := s.repo.ListSessions(ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	for i, session := range sessions {
		s.Assert().Equal(fmt.Sprintf("tactic-%d", i), session.TacticID)
	}
}

func (s *ResultsRepositorySuite) TestSessions_RetainMostRecentFifty() {
	ctx := context.Background()

	for i := 1; i <= repository.MaxRecentSessions+5; i++ {
		_, err := s.repo.AppendSession(ctx, s.gameSession(fmt.Sprintf("tactic-%02d", i), i))
		s.Require().NoError(err)
	}

	sessions, err := s.repo.ListSessions(ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, repository.MaxRecentSessions)
	s.Assert().Equal("tactic-06", sessions[0].TacticID, "oldest five were evicted")
	s.Assert().Equal(fmt.Sprintf("tactic-%02d", repository.MaxRecentSessions+5), sessions[len(sessions)-1].TacticID)
}

func TestResultsRepositorySuite(t *testing.T) {
	suite.Run(t, new(ResultsRepositorySuite))
}
