package data

import (
	"context"
	"fmt"
	"testing"
	"time"

	"linkstats/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnomalyRepo_ListFloodEvents(t *testing.T) {
	d := NewDataWithDriver(newTestDriver(t), nil)
	repo := NewAnomalyRepo(d, log.DefaultLogger)
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		insertFloodEvent(t, d, &domain.IPFloodEvent{
			ID:              fmt.Sprintf("flood-%d", i),
			LinkID:          "link-1",
			IP:              "10.0.0.1",
			ClickCount:      int64(100 + i),
			ClicksPerMinute: 12.5,
			IsBot:           i%2 == 0,
			WindowStart:     base.Add(time.Duration(i) * time.Minute),
			WindowEnd:       base.Add(time.Duration(i+1) * time.Minute),
			DetectedAt:      base.Add(time.Duration(i) * time.Hour),
		})
	}
	insertFloodEvent(t, d, &domain.IPFloodEvent{ID: "other", LinkID: "link-2", WindowStart: base, WindowEnd: base, DetectedAt: base})

	events, err := repo.ListFloodEvents(context.Background(), "link-1", 3)

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "flood-4", events[0].ID)
	assert.Equal(t, "flood-2", events[2].ID)
	assert.Equal(t, int64(104), events[0].ClickCount)
	assert.Equal(t, 12.5, events[0].ClicksPerMinute)
	assert.True(t, events[0].IsBot)
	assert.True(t, base.Add(4*time.Minute).Equal(events[0].WindowStart))
}

func TestAnomalyRepo_ListTrafficSpikes(t *testing.T) {
	d := NewDataWithDriver(newTestDriver(t), nil)
	repo := NewAnomalyRepo(d, log.DefaultLogger)
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	insertTrafficSpike(t, d, &domain.TrafficSpike{ID: "old", LinkID: "link-1", SpikeCount: 40, WindowStart: base, WindowEnd: base, DetectedAt: base})
	insertTrafficSpike(t, d, &domain.TrafficSpike{ID: "new", LinkID: "link-1", SpikeCount: 90, WindowStart: base, WindowEnd: base, DetectedAt: base.Add(time.Hour)})

	spikes, err := repo.ListTrafficSpikes(context.Background(), "link-1", domain.SpikeFeedLimit)
	empty, errEmpty := repo.ListTrafficSpikes(context.Background(), "link-3", domain.SpikeFeedLimit)

	require.NoError(t, err)
	require.Len(t, spikes, 2)
	assert.Equal(t, "new", spikes[0].ID)
	assert.Equal(t, int64(90), spikes[0].SpikeCount)
	assert.NoError(t, errEmpty)
	assert.Empty(t, empty)
}
