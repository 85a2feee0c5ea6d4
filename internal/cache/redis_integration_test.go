//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"onboarding-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type RedisCacheTestSuite struct {
	suite.Suite
	cache *RedisCache
}

func (suite *RedisCacheTestSuite) SetupSuite() {
	addr := testutils.SetupRedis(suite.T())
	c, err := NewRedisCache(context.Background(), NewRedisClient(RedisOptions{Addr: addr}))
	suite.Require().NoError(err)
	suite.cache = c
}

func (suite *RedisCacheTestSuite) TearDownSuite() {
	if suite.cache != nil {
		_ = suite.cache.Close()
	}
}

func (suite *RedisCacheTestSuite) TestRoundTrip() {
	ctx := context.Background()

	_, ok, err := suite.cache.Get(ctx, "missing")
	suite.NoError(err)
	suite.False(ok)

	suite.Require().NoError(suite.cache.Set(ctx, "plan", "cached answer", time.Minute))
	v, ok, err := suite.cache.Get(ctx, "plan")
	suite.NoError(err)
	suite.True(ok)
	suite.Equal("cached answer", v)

	suite.Require().NoError(suite.cache.Delete(ctx, "plan"))
	_, ok, err = suite.cache.Get(ctx, "plan")
	suite.NoError(err)
	suite.False(ok)
}

func (suite *RedisCacheTestSuite) TestTokenStoreOverRedis() {
	ctx := context.Background()
	store := NewTokenStore(suite.cache)

	suite.Require().NoError(store.Save(ctx, "abc", RefreshToken{UserID: 7, ExpiresAt: time.Now().Add(time.Minute)}))
	got, err := store.Lookup(ctx, "abc")
	suite.Require().NoError(err)
	suite.Equal(int64(7), got.UserID)
}

func TestRedisCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}
