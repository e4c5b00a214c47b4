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

type UserRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewUserRepository(s.db)
}

func (s *UserRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *UserRepositorySuite) TestEnsure_Idempotent() {
	ctx := context.Background()

	first, err := s.repo.Ensure(ctx, "user1")
	s.Require().NoError(err)
	s.Assert().False(first.JoinedDate.IsZero())

	second, err := s.repo.Ensure(ctx, "user1")
	s.Require().NoError(err)
	s.Assert().Equal(first, second)

	users, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Assert().Len(users, 1)
}

func (s *UserRepositorySuite) TestUpdate() {
	ctx := context.Background()
	_, err := s.repo.Ensure(ctx, "user1")
	s.Require().NoError(err)

	updated, err := s.repo.Update(ctx, models.User{ID: "user1", Name: "Asha", Email: "asha@example.com"})
	s.Require().NoError(err)
	s.Assert().Equal("Asha", updated.Name)
	s.Assert().Equal("asha@example.com", updated.Email)
}

func (s *UserRepositorySuite) TestNotFound() {
	ctx := context.Background()

	_, err := s.repo.Get(ctx, "ghost")
	s.Assert().ErrorIs(err, errors.ErrNotFound)

	_, err = s.repo.Update(ctx, models.User{ID: "ghost", Name: "x"})
	s.Assert().ErrorIs(err, errors.ErrNotFound)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
