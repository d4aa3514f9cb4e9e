// Command api wires the content storage layer and exposes it over a
// minimal HTTP surface: an article listing endpoint plus health and
// metrics. Full resource routing and authentication live in a separate
// edge service; this process owns the database connection, schema
// migration and the article/profile services built on top of it.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"conduit-backend/internal/common/pagination"
	appcfg "conduit-backend/internal/config"
	"conduit-backend/internal/domain/entity"
	pgRepo "conduit-backend/internal/infra/adapter/persistence/postgres"
	sqliteRepo "conduit-backend/internal/infra/adapter/persistence/sqlite"
	"conduit-backend/internal/infra/db"
	"conduit-backend/internal/observability/logging"
	"conduit-backend/internal/observability/slo"
	"conduit-backend/internal/observability/tracing"
	pkgconfig "conduit-backend/internal/pkg/config"
	"conduit-backend/internal/repository"
	artUC "conduit-backend/internal/usecase/article"
	profUC "conduit-backend/internal/usecase/profile"
)

func main() {
	logger := newProcessLogger()
	slog.SetDefault(logger)

	database, articleRepo, profileRepo := initStorage(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	paginationCfg := pagination.LoadFromEnv()
	articles := artUC.NewService(articleRepo, paginationCfg)
	profiles := profUC.NewService(profileRepo)

	handler := newHandler(database, articles, profiles, paginationCfg)
	handler = requestLogger(logger, handler)
	runServer(logger, handler)
}

// newProcessLogger builds the process logger. LOG_FORMAT=text switches
// to the human-readable handler for local development.
func newProcessLogger() *slog.Logger {
	if pkgconfig.LoadEnvString("LOG_FORMAT", "json") == "text" {
		return logging.NewTextLogger()
	}
	return logging.NewLogger()
}

// initStorage opens the configured backend, migrates the schema and
// builds the repositories. The backend comes from the optional YAML
// config file, or from DB_BACKEND when no file is given; an invalid
// DB_BACKEND falls back to postgres with a warning.
func initStorage(logger *slog.Logger) (*sql.DB, repository.ArticleRepository, repository.ProfileRepository) {
	var backend string
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		cfg, err := appcfg.LoadStorageConfig(path)
		if err != nil {
			logger.Error("failed to load storage config", slog.Any("error", err))
			os.Exit(1)
		}
		backend = cfg.Storage.Backend
	} else {
		result := pkgconfig.LoadEnvWithFallback("DB_BACKEND", "postgres", pkgconfig.ValidateBackend)
		for _, warning := range result.Warnings {
			logger.Warn("storage configuration fallback", slog.String("detail", warning))
		}
		backend = result.Value.(string)
	}

	switch backend {
	case "sqlite":
		sqlitePath := pkgconfig.LoadEnvString("SQLITE_PATH", "conduit.db")
		database, err := db.OpenSQLite(sqlitePath)
		if err != nil {
			logger.Error("failed to open sqlite database", slog.Any("error", err))
			os.Exit(1)
		}
		if err := db.MigrateUpSQLite(database); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		return database, sqliteRepo.NewArticleRepo(database), sqliteRepo.NewProfileRepo(database)
	default:
		database := db.Open()
		// DB_MIGRATE_RESET=true rebuilds the schema from scratch. All
		// data in the affected tables is lost.
		if reset := pkgconfig.LoadEnvBool("DB_MIGRATE_RESET", false); reset.Value.(bool) {
			logger.Warn("resetting database schema before migration")
			if err := db.MigrateDown(database); err != nil {
				logger.Error("failed to reset database", slog.Any("error", err))
				os.Exit(1)
			}
		}
		if err := db.MigrateUp(database); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		return database, pgRepo.NewArticleRepo(database), pgRepo.NewProfileRepo(database)
	}
}

// requestLogger attaches a request-scoped logger to the context so
// handlers retrieve it with logging.FromContext.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logging.WithFields(logger, map[string]interface{}{
			"component": "http",
			"method":    r.Method,
			"path":      r.URL.Path,
		})
		next.ServeHTTP(w, r.WithContext(logging.WithLogger(r.Context(), reqLogger)))
	})
}

// articleResponse is the JSON shape of a listed article.
type articleResponse struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Body           string   `json:"body"`
	Tags           []string `json:"tagList"`
	Author         string   `json:"author"`
	Favorited      bool     `json:"favorited"`
	FavoritesCount int      `json:"favoritesCount"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

func toArticleResponse(a *entity.Article) articleResponse {
	return articleResponse{
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		Tags:           a.Tags,
		Author:         a.Author.Username,
		Favorited:      a.Favorited,
		FavoritesCount: a.FavoritesCount,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
	}
}

func newHandler(database *sql.DB, articles *artUC.Service, profiles *profUC.Service, paginationCfg pagination.Config) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := database.PingContext(pingCtx); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/articles", func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracing.GetTracer().Start(r.Context(), "http.articles")
		defer span.End()

		params, err := pagination.ParseQueryParams(r, paginationCfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		filters := repository.ArticleFilters{
			Tag:       queryPtr(r, "tag"),
			Author:    queryPtr(r, "author"),
			Favorited: queryPtr(r, "favorited"),
			Limit:     params.Limit,
			Offset:    params.Offset,
		}
		result, err := articles.Filter(ctx, filters, nil)
		if err != nil {
			logging.FromContext(ctx).Error("article listing failed", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]articleResponse, 0, len(result))
		for _, a := range result {
			out = append(out, toArticleResponse(a))
		}
		writeJSON(w, map[string]interface{}{
			"articles":      out,
			"articlesCount": len(out),
		})
	})

	mux.HandleFunc("/profiles/", func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Path[len("/profiles/"):]
		p, err := profiles.Resolve(r.Context(), username, nil)
		if err != nil {
			if errors.Is(err, profUC.ErrProfileNotFound) {
				http.Error(w, "profile not found", http.StatusNotFound)
				return
			}
			logging.FromContext(r.Context()).Error("profile resolution failed", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]interface{}{
			"profile": map[string]interface{}{
				"username":  p.Username,
				"bio":       p.Bio,
				"image":     p.Image,
				"following": p.Following,
			},
		})
	})

	return mux
}

func queryPtr(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// runServer starts the HTTP server, keeps the SLO gauges refreshed and
// handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go slo.NewRefresher(prometheus.DefaultGatherer, time.Minute).Run(ctx)

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", ":8080"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
