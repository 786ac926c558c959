package biz

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"linkstats/internal/conf"
	"linkstats/internal/domain"
	"linkstats/internal/mocks"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StatsUsecaseTestSuite struct {
	suite.Suite
	ctx       context.Context
	clicks    *mocks.MockClickRepository
	links     *mocks.MockLinkRepository
	anomalies *mocks.MockAnomalyRepository
	uc        *StatsUsecase
	link      *domain.Link
}

func TestStatsUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(StatsUsecaseTestSuite))
}

func (s *StatsUsecaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clicks = mocks.NewMockClickRepository(s.T())
	s.links = mocks.NewMockLinkRepository(s.T())
	s.anomalies = mocks.NewMockAnomalyRepository(s.T())
	s.link = &domain.Link{ID: "link-1", UserID: "user-1", Alias: "promo", OriginalURL: "https://example.com"}

	uc, err := NewStatsUsecase(s.clicks, s.links, s.anomalies, &conf.Stats{ExportLimit: 50}, log.DefaultLogger)
	s.Require().NoError(err)
	s.uc = uc
}

func (s *StatsUsecaseTestSuite) expectLink() {
	s.links.EXPECT().FindByID(s.ctx, "link-1").Return(s.link, nil)
}

func (s *StatsUsecaseTestSuite) TestGeoStats() {
	// Arrange
	s.expectLink()
	rows := []domain.GroupCount{{Key: "US", Count: 3}, {Key: "DE", Count: 1}}
	s.clicks.EXPECT().CountBy(s.ctx, "link-1", domain.FieldCity, domain.MaxGroupRows).Return(rows, nil)

	// Act
	got, err := s.uc.GeoStats(s.ctx, "link-1", domain.GeoCity)

	// Assert
	s.Require().NoError(err)
	s.Equal(rows, got)
}

func (s *StatsUsecaseTestSuite) TestGroupedStats_InvalidKeyRejectedBeforeStoreAccess() {
	// Act
	_, geoErr := s.uc.GeoStats(s.ctx, "link-1", domain.GeoKey("planet"))
	_, utmErr := s.uc.UTMStats(s.ctx, "link-1", domain.UTMKey("utm_source"))
	_, devErr := s.uc.DeviceStats(s.ctx, "link-1", domain.DeviceKey("model"))

	// Assert
	s.ErrorIs(geoErr, domain.ErrInvalidGroupingKey)
	s.ErrorIs(utmErr, domain.ErrInvalidGroupingKey)
	s.ErrorIs(devErr, domain.ErrInvalidGroupingKey)
	s.links.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
	s.clicks.AssertNotCalled(s.T(), "CountBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *StatsUsecaseTestSuite) TestUTMStats() {
	// Arrange
	s.expectLink()
	s.clicks.EXPECT().CountBy(s.ctx, "link-1", domain.FieldUTMCampaign, domain.MaxGroupRows).
		Return([]domain.GroupCount{{Key: "spring", Count: 2}}, nil)

	// Act
	got, err := s.uc.UTMStats(s.ctx, "link-1", domain.UTMCampaign)

	// Assert
	s.Require().NoError(err)
	s.Equal([]domain.GroupCount{{Key: "spring", Count: 2}}, got)
}

func (s *StatsUsecaseTestSuite) TestDeviceStats() {
	// Arrange
	s.expectLink()
	s.clicks.EXPECT().CountBy(s.ctx, "link-1", domain.FieldDeviceBrowser, domain.MaxGroupRows).
		Return([]domain.GroupCount{}, nil)

	// Act
	got, err := s.uc.DeviceStats(s.ctx, "link-1", domain.DeviceBrowser)

	// Assert
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *StatsUsecaseTestSuite) TestGroupedStats_LinkNotFound() {
	// Arrange
	s.links.EXPECT().FindByID(s.ctx, "nope").Return(nil, nil)

	// Act
	_, err := s.uc.GeoStats(s.ctx, "nope", domain.GeoCountry)

	// Assert
	s.ErrorIs(err, domain.ErrLinkNotFound)
}

func (s *StatsUsecaseTestSuite) TestGroupedStats_StoreError() {
	// Arrange
	s.expectLink()
	dbErr := errors.New("timeout")
	s.clicks.EXPECT().CountBy(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)

	// Act
	_, err := s.uc.GeoStats(s.ctx, "link-1", domain.GeoCountry)

	// Assert
	s.ErrorIs(err, dbErr)
}

func (s *StatsUsecaseTestSuite) TestBotStats() {
	// Arrange
	s.expectLink()
	s.clicks.EXPECT().CountBots(s.ctx, "link-1").Return(domain.BotStats{HumanCount: 7, BotCount: 2}, nil)

	// Act
	got, err := s.uc.BotStats(s.ctx, "link-1")

	// Assert
	s.Require().NoError(err)
	s.Equal(domain.BotStats{HumanCount: 7, BotCount: 2}, got)
}

func (s *StatsUsecaseTestSuite) TestRetention_Window() {
	// 17:45 PDT is already May 2nd in UTC.
	now := time.Date(2024, 5, 1, 17, 45, 0, 0, time.FixedZone("PDT", -7*3600))
	to := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		days     int
		wantFrom time.Time
	}{
		{name: "explicit", days: 7, wantFrom: time.Date(2024, 4, 26, 0, 0, 0, 0, time.UTC)},
		{name: "single day", days: 1, wantFrom: to},
		{name: "default", days: 0, wantFrom: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)},
		{name: "negative uses default", days: -3, wantFrom: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)},
		{name: "clamped", days: 5000, wantFrom: time.Date(2023, 5, 3, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			// Arrange
			s.uc.now = func() time.Time { return now }
			s.expectLink()
			days := []domain.RetentionDay{{Date: "2024-05-02", TotalClicks: 4, UniqueVisitors: 2}}
			s.clicks.EXPECT().DailyCounts(s.ctx, "link-1", tt.wantFrom, to).Return(days, nil)

			// Act
			got, err := s.uc.Retention(s.ctx, "link-1", tt.days)

			// Assert
			s.Require().NoError(err)
			s.Equal(days, got)
		})
	}
}

func (s *StatsUsecaseTestSuite) TestRetention_LinkNotFound() {
	// Arrange
	s.links.EXPECT().FindByID(s.ctx, "link-1").Return(nil, nil)

	// Act
	_, err := s.uc.Retention(s.ctx, "link-1", 7)

	// Assert
	s.ErrorIs(err, domain.ErrLinkNotFound)
}

func (s *StatsUsecaseTestSuite) TestLocalHourDistribution() {
	// Arrange
	s.expectLink()
	base := time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC)
	s.clicks.EXPECT().ListClickTimes(s.ctx, "link-1").Return([]domain.ClickTime{
		{Timestamp: base, Timezone: "Asia/Kolkata"},
		{Timestamp: base.Add(time.Hour), Timezone: "Asia/Kolkata"},
		{Timestamp: base, Timezone: "America/New_York"},
		{Timestamp: base, Timezone: ""},
		{Timestamp: base, Timezone: "Mars/Olympus_Mons"},
		{Timestamp: base, Timezone: "Local"},
	}, nil)

	// Act
	got, err := s.uc.LocalHourDistribution(s.ctx, "link-1")

	// Assert
	s.Require().NoError(err)
	s.Require().Len(got, 24)
	for hour, bucket := range got {
		s.Equal(hour, bucket.Hour)
	}
	// Kolkata is UTC+05:30, New York UTC-04:00 in May.
	s.Equal(int64(1), got[15].Count)
	s.Equal(int64(1), got[16].Count)
	s.Equal(int64(1), got[6].Count)
	s.Equal(int64(3), got[10].Count)
	s.Equal(int64(0), got[0].Count)
}

func (s *StatsUsecaseTestSuite) TestLocalHourDistribution_NoClicks() {
	// Arrange
	s.expectLink()
	s.clicks.EXPECT().ListClickTimes(s.ctx, "link-1").Return(nil, nil)

	// Act
	got, err := s.uc.LocalHourDistribution(s.ctx, "link-1")

	// Assert
	s.Require().NoError(err)
	s.Len(got, 24)
	for _, bucket := range got {
		s.Zero(bucket.Count)
	}
}

func (s *StatsUsecaseTestSuite) TestTrafficByCategory() {
	// Arrange
	s.expectLink()
	s.clicks.EXPECT().CountBy(s.ctx, "link-1", domain.FieldRefererCategory, domain.MaxGroupRows).
		Return([]domain.GroupCount{{Key: "social", Count: 5}, {Key: "direct", Count: 2}}, nil)

	// Act
	got, err := s.uc.TrafficByCategory(s.ctx, "link-1")

	// Assert
	s.Require().NoError(err)
	s.Equal([]domain.CategoryCount{
		{Category: domain.CategorySocial, Count: 5},
		{Category: domain.CategoryDirect, Count: 2},
	}, got)
}

func (s *StatsUsecaseTestSuite) TestFloodEvents() {
	// Arrange
	s.expectLink()
	events := []*domain.IPFloodEvent{{ID: "f1", LinkID: "link-1", IP: "10.0.0.1"}}
	s.anomalies.EXPECT().ListFloodEvents(s.ctx, "link-1", domain.FloodFeedLimit).Return(events, nil)

	// Act
	got, err := s.uc.FloodEvents(s.ctx, "link-1")

	// Assert
	s.Require().NoError(err)
	s.Equal(events, got)
}

func (s *StatsUsecaseTestSuite) TestTrafficSpikes() {
	// Arrange
	s.expectLink()
	spikes := []*domain.TrafficSpike{{ID: "s1", LinkID: "link-1", SpikeCount: 900}}
	s.anomalies.EXPECT().ListTrafficSpikes(s.ctx, "link-1", domain.SpikeFeedLimit).Return(spikes, nil)

	// Act
	got, err := s.uc.TrafficSpikes(s.ctx, "link-1")

	// Assert
	s.Require().NoError(err)
	s.Equal(spikes, got)
}

func (s *StatsUsecaseTestSuite) TestSummary() {
	// Arrange
	s.expectLink()
	s.clicks.EXPECT().CountTotals(s.ctx, "link-1").Return(domain.ClickTotals{TotalClicks: 12, UniqueVisitors: 5}, nil)

	// Act
	got, err := s.uc.Summary(s.ctx, "link-1")

	// Assert
	s.Require().NoError(err)
	s.Equal(&domain.LinkSummary{
		LinkID:         "link-1",
		Alias:          "promo",
		OriginalURL:    "https://example.com",
		TotalClicks:    12,
		UniqueVisitors: 5,
	}, got)
}

func (s *StatsUsecaseTestSuite) TestHighLatencyEvents() {
	// Arrange
	s.expectLink()
	slow := []*domain.ClickEvent{{ID: "c1", LatencyMs: 900}, {ID: "c2", LatencyMs: 700}}
	s.clicks.EXPECT().ListSlow(s.ctx, "link-1", domain.HighLatencyThresholdMs, HighLatencyFeedLimit).Return(slow, nil)

	// Act
	got, err := s.uc.HighLatencyEvents(s.ctx, "link-1")

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(500), got.ThresholdMs)
	s.Equal(2, got.Count)
	s.Equal(slow, got.Events)
}

func (s *StatsUsecaseTestSuite) TestGeoHeatmap() {
	// Arrange
	s.expectLink()
	points := []domain.HeatPoint{{Lat: 52.52, Lng: 13.405, Country: "DE", City: "Berlin", Weight: 3}}
	s.clicks.EXPECT().GeoPoints(s.ctx, "link-1").Return(points, nil)

	// Act
	got, err := s.uc.GeoHeatmap(s.ctx, "link-1")

	// Assert
	s.Require().NoError(err)
	s.Equal(points, got)
}

func (s *StatsUsecaseTestSuite) TestListClicks_Limit() {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "within bounds", limit: 10, want: 10},
		{name: "zero uses export limit", limit: 0, want: 50},
		{name: "above export limit", limit: 500, want: 50},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			// Arrange
			s.expectLink()
			s.clicks.EXPECT().List(s.ctx, "link-1", tt.want).Return([]*domain.ClickEvent{}, nil)

			// Act
			_, err := s.uc.ListClicks(s.ctx, "link-1", tt.limit)

			// Assert
			s.Require().NoError(err)
		})
	}
}

func TestNormalizeRetentionDays(t *testing.T) {
	assert.Equal(t, 30, NormalizeRetentionDays(0))
	assert.Equal(t, 30, NormalizeRetentionDays(-1))
	assert.Equal(t, 1, NormalizeRetentionDays(1))
	assert.Equal(t, 366, NormalizeRetentionDays(366))
	assert.Equal(t, 366, NormalizeRetentionDays(367))
}

func TestNewStatsUsecase_Defaults(t *testing.T) {
	uc, err := NewStatsUsecase(nil, nil, nil, nil, log.DefaultLogger)

	require.NoError(t, err)
	assert.Equal(t, DefaultExportLimit, uc.exportLimit)
}

func TestStatsUsecase_LocationIsCached(t *testing.T) {
	uc, err := NewStatsUsecase(nil, nil, nil, &conf.Stats{LocationCacheSize: 2}, log.DefaultLogger)
	require.NoError(t, err)

	first := uc.location("Asia/Kolkata")
	second := uc.location("Asia/Kolkata")

	assert.Same(t, first, second)
	assert.Equal(t, time.UTC, uc.location("Not/AZone"))
	assert.Equal(t, 2, uc.locations.Len())
}

func TestStatsUsecase_LocalZoneNameIsNotServerTime(t *testing.T) {
	serverZone := time.Local
	time.Local = time.FixedZone("SERVER", 9*3600)
	t.Cleanup(func() { time.Local = serverZone })

	uc, err := NewStatsUsecase(nil, nil, nil, nil, log.DefaultLogger)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, uc.location("Local"))
	assert.Equal(t, 0, uc.locations.Len())
}
