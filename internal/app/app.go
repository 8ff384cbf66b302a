package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/soccer-insights/external/statsfeed"
	"github.com/riskibarqy/soccer-insights/internal/config"
	"github.com/riskibarqy/soccer-insights/internal/domain/league"
	"github.com/riskibarqy/soccer-insights/internal/domain/season"
	"github.com/riskibarqy/soccer-insights/internal/domain/team"
	cacherepo "github.com/riskibarqy/soccer-insights/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/soccer-insights/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/soccer-insights/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/soccer-insights/internal/platform/cache"
	idgen "github.com/riskibarqy/soccer-insights/internal/platform/id"
	"github.com/riskibarqy/soccer-insights/internal/platform/resilience"
	"github.com/riskibarqy/soccer-insights/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// NewHTTPServer wires the read API: store, caches, services and
// router. The caller owns the returned DB handle and closes it after
// server shutdown.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, *sqlx.DB, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	leagueRepo := league.Repository(postgres.NewLeagueRepository(db))
	seasonRepo := season.Repository(postgres.NewSeasonRepository(db))
	teamRepo := team.Repository(postgres.NewTeamRepository(db))
	standingsRepo := postgres.NewStandingsRepository(db)
	statsRepo := postgres.NewTeamStatsRepository(db)
	teamSeasonRepo := postgres.NewTeamSeasonRepository(db)

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		leagueRepo = cacherepo.NewLeagueRepository(leagueRepo, store)
		seasonRepo = cacherepo.NewSeasonRepository(seasonRepo, store)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
	}

	leagueSvc := usecase.NewLeagueService(leagueRepo, seasonRepo, teamRepo)
	standingsSvc := usecase.NewStandingsService(leagueRepo, standingsRepo)
	statsSvc := usecase.NewTeamStatsService(statsRepo)
	progressionSvc := usecase.NewProgressionService(teamSeasonRepo)

	handler := httpapi.NewHandler(leagueSvc, standingsSvc, statsSvc, progressionSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db, nil
}

// NewIngestionService wires the feed client and the ingestion write
// path. Used by the seed command.
func NewIngestionService(cfg config.Config, logger *slog.Logger) (*usecase.IngestionService, *sqlx.DB, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	feed := statsfeed.NewClient(statsfeed.ClientConfig{
		BaseURL:    cfg.FeedBaseURL,
		Token:      cfg.FeedToken,
		Timeout:    cfg.FeedTimeout,
		MaxRetries: cfg.FeedMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FeedCircuitEnabled,
			FailureThreshold: cfg.FeedCircuitFailureCount,
			OpenTimeout:      cfg.FeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
		},
	})

	writer := postgres.NewIngestionRepository(db)
	svc := usecase.NewIngestionService(feed, writer, idgen.NewRandomGenerator(), cfg.FeedEnabled)
	return svc, db, nil
}

func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}
