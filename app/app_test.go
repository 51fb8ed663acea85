package app

import (
	"context"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-analytics/config"
	"github.com/jekabolt/grbpwr-analytics/internal/cache"
	"github.com/jekabolt/grbpwr-analytics/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/jekabolt/grbpwr-analytics/internal/warmup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ttl time.Duration) *config.Config {
	c := &config.Config{}
	c.Redis = cache.Config{TTL: ttl}
	c.Warmup = warmup.Config{
		WorkerInterval: time.Minute,
		Units:          []entity.TimeUnit{entity.TimeUnitWeek, entity.TimeUnitMonth},
	}
	return c
}

func TestNewWarmupNeedsCache(t *testing.T) {
	ctx := context.Background()
	// The mock has no expectations, so any store query fails the test.
	rs := mocks.NewReports(t)

	c := testConfig(0)
	svc, err := NewReportService(ctx, c, rs)
	require.NoError(t, err)
	assert.False(t, svc.Cached())
	assert.Nil(t, newWarmup(ctx, &c.Warmup, svc))
}

func TestNewWarmupWithCache(t *testing.T) {
	ctx := context.Background()
	rs := mocks.NewReports(t)

	c := testConfig(time.Minute)
	svc, err := NewReportService(ctx, c, rs)
	require.NoError(t, err)
	assert.True(t, svc.Cached())
	assert.NotNil(t, newWarmup(ctx, &c.Warmup, svc))

	c.Warmup.Units = nil
	assert.Nil(t, newWarmup(ctx, &c.Warmup, svc))
}
