//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/jsamuelsen/quotes-service/internal/adapters/http"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/persistence"
	"github.com/jsamuelsen/quotes-service/internal/adapters/persistence/persistencetest"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// startServer runs the full router over a seeded in-memory database.
// The server is closed when tb finishes.
func startServer(tb testing.TB) *httptest.Server {
	tb.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := persistence.NewQuoteStore(persistencetest.NewSeededDB(tb))

	registry := ports.NewHealthRegistry()
	require.NoError(tb, registry.Register(store))

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:           store,
		Sanitizer:       persistence.NewLikeSanitizer(),
		Logger:          logger,
		DefaultLimit:    config.DefaultQuotesLimit,
		ParallelQueries: true,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "quotes-service", Version: "test", Environment: "test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now")),
		handlers.NewQuoteHandler(service),
	))

	srv := httptest.NewServer(engine)
	tb.Cleanup(srv.Close)

	return srv
}
