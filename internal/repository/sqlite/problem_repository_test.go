package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
	"github.com/vytor/jeeprep/internal/repository/sqlite"
	"github.com/vytor/jeeprep/internal/testutil"
)

type ProblemRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProblemRepository
}

func (s *ProblemRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProblemRepository(s.db)

	added, err := s.repo.Import(context.Background(), testutil.SampleProblems())
	s.Require().NoError(err)
	s.Require().Equal(3, added)
}

func (s *ProblemRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProblemRepositorySuite) TestList_SortedByNumericID() {
	problems, err := s.repo.List(context.Background(), models.ProblemFilter{})
	s.Require().NoError(err)
	s.Require().Len(problems, 3)

	s.Assert().Equal(models.ProblemID("1"), problems[0].ID)
	s.Assert().Equal(models.ProblemID("2"), problems[1].ID)
	s.Assert().Equal(models.ProblemID("10"), problems[2].ID)
}

func (s *ProblemRepositorySuite) TestList_Filters() {
	ctx := context.Background()

	byTopic, err := s.repo.List(ctx, models.ProblemFilter{TopicSlug: "chemistry"})
	s.Require().NoError(err)
	s.Require().Len(byTopic, 1)
	s.Assert().Equal("Chemical Equilibrium", byTopic[0].Title)

	byDifficulty, err := s.repo.List(ctx, models.ProblemFilter{Difficulty: models.DifficultyHard})
	s.Require().NoError(err)
	s.Require().Len(byDifficulty, 1)
	s.Assert().Equal(models.ProblemID("10"), byDifficulty[0].ID)

	none, err := s.repo.List(ctx, models.ProblemFilter{TopicSlug: "biology"})
	s.Require().NoError(err)
	s.Assert().NotNil(none)
	s.Assert().Empty(none)
}

func (s *ProblemRepositorySuite) TestGet_RoundTripsOptionsAndHints() {
	p, err := s.repo.Get(context.Background(), "1")
	s.Require().NoError(err)

	s.Assert().Equal("Projectile Motion", p.Title)
	s.Assert().Equal("B", p.CorrectAnswer)
	s.Assert().Len(p.Options, 2)
	s.Assert().Equal([]string{"Ignore air resistance"}, p.Hints)

	noHints, err := s.repo.Get(context.Background(), "2")
	s.Require().NoError(err)
	s.Assert().Nil(noHints.Hints)
}

func (s *ProblemRepositorySuite) TestGet_NotFound() {
	p, err := s.repo.Get(context.Background(), "999")
	s.Assert().ErrorIs(err, errors.ErrNotFound)
	s.Assert().Nil(p)
}

func (s *ProblemRepositorySuite) TestImport_SkipsExisting() {
	problems := testutil.SampleProblems()
	problems[0].Title = "Changed"

	added, err := s.repo.Import(context.Background(), problems)
	s.Require().NoError(err)
	s.Assert().Equal(0, added)

	p, err := s.repo.Get(context.Background(), "1")
	s.Require().NoError(err)
	s.Assert().Equal("Projectile Motion", p.Title)
}

func (s *ProblemRepositorySuite) TestTopics() {
	topics, err := s.repo.Topics(context.Background())
	s.Require().NoError(err)
	s.Require().Len(topics, 3)
	s.Assert().Equal(models.Topic{Name: "Chemistry", Slug: "chemistry", ProblemCount: 1}, topics[0])
}

func TestProblemRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProblemRepositorySuite))
}
