// Package wire provides dependency injection for the stackgen application.
// It builds services for one project root with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	cliadapter "github.com/example/stackgen/internal/adapters/cli"
	"github.com/example/stackgen/internal/adapters/filesystem"
	"github.com/example/stackgen/internal/adapters/sqlite"
	"github.com/example/stackgen/internal/app"
	"github.com/example/stackgen/internal/config"
	"github.com/example/stackgen/internal/db"
	"github.com/example/stackgen/internal/ports/primary"
	"github.com/example/stackgen/internal/ports/secondary"
	"github.com/example/stackgen/internal/scaffold"
)

// Options carries the per-invocation inputs the container is built from.
type Options struct {
	Root   string // project root; empty means the working directory
	Logger *slog.Logger

	// Overrides applied on top of the loaded configuration.
	BackendDir string
	ClientDir  string
	SkipClient bool
	NoHistory  bool

	Now func() time.Time // clock for migration stamps; defaults to time.Now
}

// Container holds the wired services for one project root.
type Container struct {
	opts   Options
	cfg    *config.Config
	store  *filesystem.ProjectStore
	logger *slog.Logger

	once    sync.Once
	service primary.ScaffoldService

	dbOnce   sync.Once
	dbErr    error
	database *sql.DB
	runs     *sqlite.RunRepository
}

// New loads configuration for the project root and prepares the container.
// Services are created on first use.
func New(opts Options) (*Container, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	store, err := filesystem.NewProjectStore(opts.Root)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(store.Root())
	if err != nil {
		return nil, err
	}
	if opts.BackendDir != "" {
		cfg.BackendDir = opts.BackendDir
	}
	if opts.ClientDir != "" {
		cfg.ClientDir = opts.ClientDir
	}
	if opts.SkipClient {
		cfg.SkipClient = true
	}
	if opts.NoHistory {
		cfg.History.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	logger.Debug("loaded configuration", "root", store.Root(), "backend_dir", cfg.BackendDir, "client_dir", cfg.ClientDir)

	return &Container{
		opts:   opts,
		cfg:    cfg,
		store:  store,
		logger: logger,
	}, nil
}

// Config returns the effective configuration.
func (c *Container) Config() *config.Config {
	return c.cfg
}

// Root returns the absolute project root.
func (c *Container) Root() string {
	return c.store.Root()
}

// ScaffoldService returns the ScaffoldService instance.
func (c *Container) ScaffoldService() primary.ScaffoldService {
	c.once.Do(c.initServices)
	return c.service
}

// ScaffoldAdapter returns a new ScaffoldAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func (c *Container) ScaffoldAdapter(out io.Writer) *cliadapter.ScaffoldAdapter {
	return cliadapter.NewScaffoldAdapter(c.ScaffoldService(), out)
}

// Close releases the history database if it was opened.
func (c *Container) Close() error {
	if c.database != nil {
		return c.database.Close()
	}
	return nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func (c *Container) initServices() {
	// Repository adapter (secondary port), only when history is on
	var runs secondary.RunRepository
	if c.cfg.History.Enabled {
		runs = &lazyRunRepository{c: c}
	}

	// Effect executor with injected adapters
	executor := app.NewEffectExecutor(c.store, runs, c.logger)

	// Service (primary port implementation)
	c.service = app.NewScaffoldService(
		app.ScaffoldOptions{
			Layout:     c.cfg.Layout(),
			SkipClient: c.cfg.SkipClient,
			Overwrite:  c.cfg.Overwrite,
		},
		scaffold.NewGenerator(),
		executor,
		runs,
		c.logger,
		c.opts.Now,
	)
}

// runRepository opens the history database on first use.
func (c *Container) runRepository() (*sqlite.RunRepository, error) {
	c.dbOnce.Do(func() {
		path := c.cfg.HistoryPath(c.store.Root())
		database, err := db.Open(path)
		if err != nil {
			c.dbErr = fmt.Errorf("failed to initialize history database: %w", err)
			return
		}
		c.logger.Debug("opened history", "path", path)
		c.database = database
		c.runs = sqlite.NewRunRepository(database)
	})
	return c.runs, c.dbErr
}

// lazyRunRepository defers opening the database until a run is recorded or
// listed, so rejected input never creates the history file.
type lazyRunRepository struct {
	c *Container
}

func (r *lazyRunRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	repo, err := r.c.runRepository()
	if err != nil {
		return err
	}
	return repo.Create(ctx, run)
}

func (r *lazyRunRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	repo, err := r.c.runRepository()
	if err != nil {
		return nil, err
	}
	return repo.GetByID(ctx, id)
}

func (r *lazyRunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	repo, err := r.c.runRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, filters)
}

var _ secondary.RunRepository = (*lazyRunRepository)(nil)
