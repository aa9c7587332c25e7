package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
	"github.com/KirkDiggler/regen-engine/internal/repositories/characters"
	"github.com/KirkDiggler/regen-engine/internal/testutils"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo characters.Repository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = characters.NewInMemoryRepository()
	s.ctx = context.Background()
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) TestPutAndGet() {
	char := testutils.CreateTestCharacter("tess", "Tess")
	s.Require().NoError(s.repo.Put(s.ctx, char))

	got, err := s.repo.Get(s.ctx, "tess")
	s.Require().NoError(err)
	s.Same(char, got)
}

func (s *InMemoryRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, "ghost")
	s.True(apperrors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, "")
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestPut_Validation() {
	s.True(apperrors.IsInvalidArgument(s.repo.Put(s.ctx, nil)))
	s.True(apperrors.IsInvalidArgument(s.repo.Put(s.ctx, &health.Character{ID: "bodiless"})))
}

func (s *InMemoryRepositoryTestSuite) TestListAndDelete() {
	for _, id := range []string{"tess", "bram", "ada"} {
		s.Require().NoError(s.repo.Put(s.ctx, testutils.CreateTestCharacter(id, id)))
	}

	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("ada", all[0].ID)
	s.Equal("tess", all[2].ID)

	s.Require().NoError(s.repo.Delete(s.ctx, "bram"))
	s.True(apperrors.IsNotFound(s.repo.Delete(s.ctx, "bram")))

	all, err = s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
}
