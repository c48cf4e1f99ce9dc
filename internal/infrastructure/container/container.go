// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/hearthhq/hearth/internal/application/household"
	"github.com/hearthhq/hearth/internal/application/mealplan"
	recipeapp "github.com/hearthhq/hearth/internal/application/recipe"
	"github.com/hearthhq/hearth/internal/domain/shared"
	"github.com/hearthhq/hearth/internal/infrastructure/config"
	"github.com/hearthhq/hearth/internal/infrastructure/fixtures"
	"github.com/hearthhq/hearth/internal/infrastructure/http/apiserver"
	"github.com/hearthhq/hearth/internal/infrastructure/http/handlers"
	"github.com/hearthhq/hearth/internal/infrastructure/monitoring"
	gormRepo "github.com/hearthhq/hearth/internal/infrastructure/persistence/gorm"
	"github.com/hearthhq/hearth/internal/infrastructure/persistence/memory"
	redisRepo "github.com/hearthhq/hearth/internal/infrastructure/persistence/redis"
	"github.com/hearthhq/hearth/internal/infrastructure/persistence/sqlite"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/healthcheck"
	"github.com/hearthhq/hearth/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	MonitoringModule,
	DatabaseModule,
	CacheModule,

	// Repository modules
	RepositoryModule,

	// Service modules
	ServiceModule,

	// HTTP modules
	HTTPModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigPath is read by ConfigModule; empty searches the default locations
var ConfigPath string

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load(ConfigPath)
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// MonitoringModule provides the metrics collector, which is also the domain event sink
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
	func(m *monitoring.MetricsCollector) shared.EventSink { return m },
)

// Database wraps the optional SQL store; DB is nil for the memory driver
type Database struct {
	DB *gorm.DB
}

// DatabaseModule provides the database connection
var DatabaseModule = fx.Provide(NewDatabase)

// NewDatabase opens the SQLite store when configured
func NewDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*Database, error) {
	if cfg.Database.Driver != config.DriverSQLite {
		log.Info("Using in-memory storage")
		return &Database{}, nil
	}

	db, err := sqlite.SetupDatabase(cfg.Database.Path, sqlite.LogLevel(cfg.Database.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
	}
	log.Info("Connected to SQLite database", zap.String("path", cfg.Database.Path))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return sqlite.Close(db)
		},
	})
	return &Database{DB: db}, nil
}

// CacheModule provides caching
var CacheModule = fx.Provide(NewCache)

type closableCache interface {
	outbound.CacheRepository
	Close() error
}

// NewCache builds the configured cache wrapped with metrics
func NewCache(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	metrics *monitoring.MetricsCollector,
) outbound.CacheRepository {
	var cache closableCache

	switch cfg.Cache.Driver {
	case config.DriverRedis:
		client := redisRepo.NewClient(redisRepo.Options{
			Addrs:        cfg.Redis.Addrs(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.Database,
			PoolSize:     cfg.Redis.PoolSize,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		cache = redisRepo.NewCacheRepository(client, cfg.Redis.KeyPrefix, log)
		log.Info("Using Redis cache", zap.Strings("addrs", cfg.Redis.Addrs()))
	default:
		cache = memory.NewCacheRepository(cfg.Cache.SweepInterval)
		log.Info("Using in-memory cache")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return cache.Close()
		},
	})
	return monitoring.NewInstrumentedCache(cache, metrics)
}

// Repositories is the set of storage adapters
type Repositories struct {
	fx.Out

	Recipes   outbound.RecipeRepository
	MealPlans outbound.MealPlanRepository
	Shopping  outbound.ShoppingRepository
	Tasks     outbound.TaskRepository
	Calendar  outbound.CalendarRepository
	Members   outbound.MemberRepository
	Health    outbound.HealthRepository
}

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(NewRepositories)

// NewRepositories selects the recipe and meal plan stores; household data stays in memory
func NewRepositories(db *Database) Repositories {
	repos := Repositories{
		Shopping: memory.NewShoppingRepository(),
		Tasks:    memory.NewTaskRepository(),
		Calendar: memory.NewCalendarRepository(),
		Members:  memory.NewMemberRepository(),
		Health:   memory.NewHealthRepository(),
	}
	if db.DB != nil {
		repos.Recipes = gormRepo.NewRecipeRepository(db.DB)
		repos.MealPlans = gormRepo.NewMealPlanRepository(db.DB)
	} else {
		repos.Recipes = memory.NewRecipeRepository()
		repos.MealPlans = memory.NewMealPlanRepository()
	}
	return repos
}

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	fx.Annotate(
		mealplan.NewMealPlanService,
		fx.As(new(inbound.MealPlanService)),
	),
	fx.Annotate(
		household.NewShoppingService,
		fx.As(new(inbound.ShoppingService)),
	),
	fx.Annotate(
		household.NewTaskService,
		fx.As(new(inbound.TaskService)),
	),
	fx.Annotate(
		household.NewCalendarService,
		fx.As(new(inbound.CalendarService)),
	),
	fx.Annotate(
		household.NewMemberService,
		fx.As(new(inbound.MemberService)),
	),
	fx.Annotate(
		household.NewHealthService,
		fx.As(new(inbound.HealthService)),
	),
	fx.Annotate(
		household.NewDashboardService,
		fx.As(new(inbound.DashboardService)),
	),
	func(cfg *config.Config) recipeapp.Config {
		return recipeapp.Config{
			MaxTags:        cfg.Tags.Max,
			SuggestedLimit: cfg.Tags.Suggested,
			VocabularyTTL:  cfg.Cache.TTL,
		}
	},
	fx.Annotate(
		recipeapp.NewRecipeService,
		fx.As(new(inbound.RecipeService)),
	),
)

// HTTPModule provides HTTP server and handlers
var HTTPModule = fx.Provide(
	handlers.NewRecipeHandlers,
	handlers.NewMealPlanHandlers,
	handlers.NewHouseholdHandlers,
	handlers.NewDashboardHandlers,
	func(
		recipes *handlers.RecipeHandlers,
		mealPlans *handlers.MealPlanHandlers,
		home *handlers.HouseholdHandlers,
		dashboard *handlers.DashboardHandlers,
	) apiserver.Handlers {
		return apiserver.Handlers{
			Recipes:   recipes,
			MealPlans: mealPlans,
			Household: home,
			Dashboard: dashboard,
		}
	},
	NewSeedState,
	NewHealthCheck,
	apiserver.NewAPIServer,
)

// SeedState records the outcome of the startup fixtures seed
type SeedState struct {
	mu     sync.RWMutex
	done   bool
	counts map[string]int
	err    error
}

// NewSeedState creates an unseeded state
func NewSeedState() *SeedState {
	return &SeedState{}
}

// Record stores the seed result
func (s *SeedState) Record(counts map[string]int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = true
	s.counts = counts
	s.err = err
}

// Check reports unhealthy on a failed seed and degraded until one finishes
func (s *SeedState) Check(context.Context) (healthcheck.Status, string, interface{}) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case !s.done:
		return healthcheck.StatusDegraded, "fixtures not seeded", nil
	case s.err != nil:
		return healthcheck.StatusUnhealthy, s.err.Error(), nil
	}
	return healthcheck.StatusHealthy, "", s.counts
}

// NewHealthCheck registers a ping check per backing store, plus a fixtures
// check when sample data is seeded at startup
func NewHealthCheck(cfg *config.Config, log *zap.Logger, cache outbound.CacheRepository, db *Database, seeded *SeedState) *healthcheck.HealthCheck {
	hc := healthcheck.New(cfg.App.Version, log.Named("healthcheck"))
	hc.Register("cache", healthcheck.NewPingChecker(cache.Ping))
	if cfg.Fixtures.Enable {
		hc.Register("fixtures", healthcheck.NewCustomChecker("fixtures", seeded.Check))
	}
	if db.DB != nil {
		hc.Register("database", healthcheck.NewPingChecker(func(ctx context.Context) error {
			sqlDB, err := db.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}))
	}
	return hc
}

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// SeedParams collects the repositories seeded at startup
type SeedParams struct {
	fx.In

	Recipes   outbound.RecipeRepository
	MealPlans outbound.MealPlanRepository
	Shopping  outbound.ShoppingRepository
	Tasks     outbound.TaskRepository
	Calendar  outbound.CalendarRepository
	Members   outbound.MemberRepository
	Health    outbound.HealthRepository
}

// RegisterLifecycleHooks seeds the sample data and runs the HTTP server
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Config,
	log *zap.Logger,
	repos SeedParams,
	seeded *SeedState,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Hearth",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			if cfg.Fixtures.Enable {
				counts, err := seed(ctx, cfg.Fixtures.Path, repos, log)
				seeded.Record(counts, err)
				if err != nil {
					return err
				}
			}

			go func() {
				if err := server.Start(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server failed", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Hearth")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			_ = log.Sync()
			return nil
		},
	})
}

func seed(ctx context.Context, path string, repos SeedParams, log *zap.Logger) (map[string]int, error) {
	doc, err := fixtures.Load(path)
	if err != nil {
		return nil, err
	}
	data, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}
	if err := fixtures.Seed(ctx, data, fixtures.Repositories{
		Recipes:   repos.Recipes,
		MealPlans: repos.MealPlans,
		Shopping:  repos.Shopping,
		Tasks:     repos.Tasks,
		Calendar:  repos.Calendar,
		Members:   repos.Members,
		Health:    repos.Health,
	}); err != nil {
		return nil, err
	}

	counts := data.Counts()
	fields := make([]zap.Field, 0, len(counts))
	for section, n := range counts {
		fields = append(fields, zap.Int(section, n))
	}
	log.Info("Seeded sample data", fields...)
	return counts, nil
}
