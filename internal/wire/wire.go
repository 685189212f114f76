// Package wire provides dependency injection for the onboard application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/onboard/internal/adapters/cli"
	"github.com/example/onboard/internal/adapters/sqlite"
	"github.com/example/onboard/internal/app"
	"github.com/example/onboard/internal/catalog"
	"github.com/example/onboard/internal/db"
	"github.com/example/onboard/internal/ports/primary"
)

var (
	progressService primary.ProgressService
	logger          *zap.Logger
	once            sync.Once
)

// ProgressService returns the singleton ProgressService instance.
func ProgressService() primary.ProgressService {
	once.Do(initServices)
	return progressService
}

// Logger returns the singleton logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	// Repository adapter (secondary port) with injected DB
	repo := sqlite.NewProgressRepository(database)

	// Service (primary port implementation) over the compiled-in catalog
	progressService = app.NewProgressService(repo, catalog.Default(), catalog.DefaultResources(), logger)
}

// ProgressAdapter returns a new ProgressAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ProgressAdapter() *cliadapter.ProgressAdapter {
	return ProgressAdapterWithOutput(os.Stdout)
}

// ProgressAdapterWithOutput returns a new ProgressAdapter writing to the given
// output. This variant allows testing or alternate output destinations.
func ProgressAdapterWithOutput(out io.Writer) *cliadapter.ProgressAdapter {
	once.Do(initServices)
	return cliadapter.NewProgressAdapter(progressService, out)
}
