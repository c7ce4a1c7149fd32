// Package wire provides dependency injection for the keeper application.
// A Session owns one run's database, stores and services.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	cliadapter "github.com/example/keeper/internal/adapters/cli"
	"github.com/example/keeper/internal/adapters/metrics"
	"github.com/example/keeper/internal/adapters/sqlite"
	"github.com/example/keeper/internal/app"
	"github.com/example/keeper/internal/config"
	"github.com/example/keeper/internal/core/product"
	"github.com/example/keeper/internal/core/species"
	"github.com/example/keeper/internal/ctxutil"
	"github.com/example/keeper/internal/db"
	"github.com/example/keeper/internal/ports/primary"
)

// Session bundles the services for one process run, seeded with the
// built-in records.
type Session struct {
	ID string

	database *sql.DB
	metrics  *metrics.PrometheusRecorder

	speciesService primary.SpeciesService
	productService primary.ProductService
	historyService primary.HistoryService
}

// NewSession opens a fresh in-memory change log and builds every service.
func NewSession(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	database, err := db.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	id := uuid.NewString()

	// Create repository adapters (secondary ports) with injected DB
	changeRepo := sqlite.NewChangeLogRepository(database)
	changeLog := sqlite.NewLogWriterAdapter(changeRepo)
	recorder := metrics.NewPrometheusRecorder()

	opts := app.Options{
		Changes:     changeLog,
		Metrics:     recorder,
		Logger:      logger.With(zap.String("session", id)),
		MergePolicy: policy,
	}

	speciesData, newSpecies := species.SeedData()
	inventory, newProducts := product.SeedData()

	return &Session{
		ID:             id,
		database:       database,
		metrics:        recorder,
		speciesService: app.NewSpeciesService(speciesData, newSpecies, opts),
		productService: app.NewProductService(inventory, newProducts, opts),
		historyService: app.NewHistoryService(changeRepo),
	}, nil
}

// Context returns ctx carrying the session ID.
func (s *Session) Context(ctx context.Context) context.Context {
	return ctxutil.WithSessionID(ctx, s.ID)
}

// SpeciesService returns the session's SpeciesService.
func (s *Session) SpeciesService() primary.SpeciesService {
	return s.speciesService
}

// ProductService returns the session's ProductService.
func (s *Session) ProductService() primary.ProductService {
	return s.productService
}

// SpeciesAdapter returns a new SpeciesAdapter writing to the given output.
// Each call creates a new adapter (adapters are stateless translators).
func (s *Session) SpeciesAdapter(out io.Writer) *cliadapter.SpeciesAdapter {
	return cliadapter.NewSpeciesAdapter(s.speciesService, out)
}

// ProductAdapter returns a new ProductAdapter writing to the given output.
func (s *Session) ProductAdapter(out io.Writer) *cliadapter.ProductAdapter {
	return cliadapter.NewProductAdapter(s.productService, out)
}

// HistoryAdapter returns a new HistoryAdapter writing to the given output.
func (s *Session) HistoryAdapter(out io.Writer) *cliadapter.HistoryAdapter {
	return cliadapter.NewHistoryAdapter(s.historyService, out)
}

// WriteMetrics writes the session's operation metrics in Prometheus text format.
func (s *Session) WriteMetrics(w io.Writer) error {
	return s.metrics.WriteText(w)
}

// Close releases the session database.
func (s *Session) Close() error {
	return s.database.Close()
}
