package initializer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/ledger"
	"github.com/amirasaad/ledger/pkg/money"
)

// Deps holds the dependencies of the ledger demo.
type Deps struct {
	Config *config.App
	Logger *slog.Logger
	Ledger *ledger.Ledger
	// Format renders a Money value according to Config.Display.
	Format func(money.Money) string
}

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(w io.Writer, cfg *config.App) (*Deps, error) {
	if cfg == nil || cfg.Log == nil || cfg.Display == nil {
		return nil, fmt.Errorf("initializer: incomplete config")
	}

	logger := SetupLogger(w, cfg.Log)

	format := money.Money.String
	switch cfg.Display.Mode {
	case config.DisplayFixed:
	case config.DisplayExact:
		format = money.Money.ExactString
	default:
		return nil, fmt.Errorf("initializer: unknown display mode %q", cfg.Display.Mode)
	}

	logger.Debug("Dependencies initialized",
		"env", cfg.Env,
		"display_mode", cfg.Display.Mode,
		"currencies", money.Supported(),
	)
	return &Deps{
		Config: cfg,
		Logger: logger,
		Ledger: ledger.New(logger),
		Format: format,
	}, nil
}
