package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-server/config"
	"github.com/oksasatya/go-shop-server/internal/session"
	"github.com/oksasatya/go-shop-server/pkg/helpers"
)

// Process-wide singletons, initialized once at startup and torn down via
// Close. Router modules auto-wire themselves from these.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	sessions    *session.Manager
	rabbitPub   *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetPGPool(p *pgxpool.Pool)               { pgPool = p }
func GetPGPool() *pgxpool.Pool                { return pgPool }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetSessions(m *session.Manager)          { sessions = m }
func GetSessions() *session.Manager           { return sessions }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

// Close releases every held connection. Safe to call once at shutdown.
func Close() {
	if pgPool != nil {
		pgPool.Close()
		pgPool = nil
	}
	if redisClient != nil {
		_ = redisClient.Close()
		redisClient = nil
	}
	rabbitPub.Close()
	rabbitPub = nil
}
