package memberrepo_test

import (
	"context"
	"testing"
	"time"

	"flowerorder/internal/adapters/out/postgres/memberrepo"
	"flowerorder/internal/adapters/out/postgres/pgtest"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
	"flowerorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var signedUpAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type MemberRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *memberrepo.GormMemberRepository
	tracker    *MockAggregateTracker
}

func TestMemberRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(MemberRepositoryIntegrationTestSuite))
}

func (s *MemberRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(),
		&memberrepo.MemberDTO{}, &memberrepo.ActivityRegionDTO{}, &memberrepo.ProductPriceDTO{})
	s.Require().NoError(err)
	s.database = database
}

func (s *MemberRepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.database.Truncate("member_activity_regions", "member_product_prices", "members"))
	s.tracker = new(MockAggregateTracker)
	s.repository = memberrepo.NewGormMemberRepository(s.database.DB, s.tracker)
}

func (s *MemberRepositoryIntegrationTestSuite) TearDownSuite() {
	if s.database != nil {
		s.Require().NoError(s.database.Terminate(context.Background()))
	}
}

func (s *MemberRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := s.T().Context()
	m := s.newMember()
	s.tracker.On("TrackAggregate", m.ID(), m).Once()

	s.Require().NoError(s.repository.Add(ctx, m))

	got, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	s.Equal("rosegarden", got.LoginID())
	s.Equal("Rose Garden Corp", got.Profile().CorpName)
	s.Equal(member.StatusPending, got.Status())
	s.Equal(member.ApprovalPending, got.Approval())
	s.True(got.Audit().CreatedAt().Equal(signedUpAt))
	s.tracker.AssertExpectations(s.T())
}

func (s *MemberRepositoryIntegrationTestSuite) TestGet_Unknown_NotFound() {
	_, err := s.repository.Get(s.T().Context(), kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *MemberRepositoryIntegrationTestSuite) TestExistsByLoginIDAndBusinessNumber() {
	ctx := s.T().Context()
	s.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	s.Require().NoError(s.repository.Add(ctx, s.newMember()))

	exists, err := s.repository.ExistsByLoginID(ctx, "rosegarden")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repository.ExistsByLoginID(ctx, "nobody")
	s.Require().NoError(err)
	s.False(exists)

	exists, err = s.repository.ExistsByBusinessNumber(ctx, "123-45-67890")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *MemberRepositoryIntegrationTestSuite) TestUpdate_ApprovalAndRegionPricesUpsert() {
	ctx := s.T().Context()
	s.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	m := s.newMember()
	s.Require().NoError(s.repository.Add(ctx, m))

	s.Require().NoError(m.Approve(signedUpAt.Add(time.Hour)))
	s.Require().NoError(m.ReplaceRegionPrices([]member.RegionPriceInput{
		{Sido: "Seoul", Sigungu: "Gangnam", Handled: true, Prices: []member.CategoryPriceInput{
			{CategoryName: "wreath", Price: kernel.NewMoney(100000), Available: true},
		}},
		{Sido: "Seoul", Sigungu: "Mapo", Handled: true},
	}, signedUpAt.Add(time.Hour)))
	s.Require().NoError(s.repository.Update(ctx, m))

	reloaded, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	s.Equal(member.StatusActive, reloaded.Status())
	s.Len(reloaded.ActivityRegions(), 2)
	s.Require().Len(reloaded.ProductPrices(), 1)

	s.Require().NoError(reloaded.ReplaceRegionPrices([]member.RegionPriceInput{
		{Sido: "Seoul", Sigungu: "Gangnam", Handled: false, Prices: []member.CategoryPriceInput{
			{CategoryName: "wreath", Price: kernel.NewMoney(120000), Available: true},
		}},
	}, signedUpAt.Add(2*time.Hour)))
	s.Require().NoError(s.repository.Update(ctx, reloaded))

	final, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	regions := final.ActivityRegions()
	s.Require().Len(regions, 2)
	for _, r := range regions {
		s.False(r.Active, r.Sigungu)
	}
	prices := final.ProductPrices()
	s.Require().Len(prices, 1)
	s.True(kernel.NewMoney(120000).IsEqual(prices[0].Price))
	s.False(prices[0].Available)
}

func (s *MemberRepositoryIntegrationTestSuite) TestUpdate_InsertsUnavailablePriceAsUnavailable() {
	ctx := s.T().Context()
	s.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	m := s.newMember()
	s.Require().NoError(s.repository.Add(ctx, m))

	s.Require().NoError(m.ReplaceRegionPrices([]member.RegionPriceInput{
		{Sido: "Busan", Sigungu: "Haeundae", Handled: true, Prices: []member.CategoryPriceInput{
			{CategoryName: "basket", Price: kernel.NewMoney(50000), Available: false},
			{CategoryName: "wreath", Price: kernel.NewMoney(90000), Available: true},
		}},
	}, signedUpAt.Add(time.Hour)))
	s.Require().NoError(s.repository.Update(ctx, m))

	reloaded, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	available := map[string]bool{}
	for _, p := range reloaded.ProductPrices() {
		available[p.CategoryName] = p.Available
	}
	s.Equal(map[string]bool{"basket": false, "wreath": true}, available)
}

func (s *MemberRepositoryIntegrationTestSuite) newMember() *member.Member {
	m, err := member.SignUp(kernel.NewUUID(), member.Registration{
		LoginID: "rosegarden",
		Name:    "Kim",
		Mobile:  "010-1111-2222",
		Profile: member.BusinessProfile{BusinessNumber: "123-45-67890", CorpName: "Rose Garden Corp"},
	}, signedUpAt)
	s.Require().NoError(err)
	return m
}
