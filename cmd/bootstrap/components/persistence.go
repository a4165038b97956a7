package components

import (
	"institut-booking/internal/infra/cache"
	"institut-booking/internal/infra/readstore"
	"institut-booking/internal/infra/repository"
	"institut-booking/internal/usecase/commands"
	"institut-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewAppointmentReadStore,
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
		NewCatalogReadStore,
		NewCatalogCache,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
	),
)

// NewCatalogReadStore layers the Redis cache over the Postgres read store
// when a client is configured.
func NewCatalogReadStore(pool *pgxpool.Pool, client *redis.Client) queries.CatalogReadStore {
	base := readstore.NewCatalogReadStore(pool)
	if client == nil {
		return base
	}
	return cache.NewCatalogCacheStore(base, client)
}

func NewCatalogCache(store queries.CatalogReadStore) commands.CatalogCache {
	if cached, ok := store.(*cache.CatalogCacheStore); ok {
		return cached
	}
	return cache.NewNoopCatalogCache()
}
