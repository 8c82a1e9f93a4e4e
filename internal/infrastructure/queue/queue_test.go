package queue

import (
	"context"
	"testing"

	"catalog-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestRedisOpt(t *testing.T) {
	opt := RedisOpt(config.RedisConfig{Host: "redis:6379", Password: "pw", DB: 2})

	assert.Equal(t, "redis:6379", opt.Addr)
	assert.Equal(t, "pw", opt.Password)
	assert.Equal(t, 2, opt.DB)
}

func TestBroker_HealthCheckUnreachable(t *testing.T) {
	b := NewBroker(config.RedisConfig{Host: "127.0.0.1:1"})
	defer b.Close()

	assert.Error(t, b.HealthCheck(context.Background()))
}

func TestScheduler_RegisterJobs(t *testing.T) {
	redisCfg := config.RedisConfig{Host: "127.0.0.1:1"}

	s := NewScheduler(redisCfg, config.EventsConfig{Queue: "default"})
	assert.NoError(t, s.RegisterJobs(), "empty cron disables the audit")

	s = NewScheduler(redisCfg, config.EventsConfig{Queue: "default", AuditCron: "not a cron"})
	assert.Error(t, s.RegisterJobs())

	s = NewScheduler(redisCfg, config.EventsConfig{Queue: "default", AuditCron: "0 3 * * *"})
	assert.NoError(t, s.RegisterJobs())
}
