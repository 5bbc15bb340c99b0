package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSetAndGet() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Set(ctx, "notification_settings:user-1", `{"sessionReminders":false}`))

	value, err := s.repo.Get(ctx, "notification_settings:user-1")
	s.Require().NoError(err)
	s.Equal(`{"sessionReminders":false}`, value)

	// Stored under the kv namespace
	s.True(s.mr.Exists("kv:notification_settings:user-1"))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(context.Background(), "nothing")
	s.ErrorIs(err, ErrNotFound)
}

func (s *RedisRepositoryTestSuite) TestEmptyKey() {
	s.Error(s.repo.Set(context.Background(), "", "x"))

	_, err := s.repo.Get(context.Background(), "")
	s.Error(err)
}
