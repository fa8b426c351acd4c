// internal/app/app.go
package app

import (
	"care-shift-api/config"
	"care-shift-api/internal/events"
	"care-shift-api/internal/services"
	"care-shift-api/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	Repos     *storage.Repositories
	TxManager storage.TxManager
	Publisher events.Publisher

	JobService         services.JobService
	ApplicationService services.ApplicationService
	Coordinator        *services.Coordinator
}
