// Package chronicle parses chronicle command flags and starts the service.
package chronicle

import (
	"context"
	"flag"

	entrypoint "github.com/ironfell/chronicle/internal/platform/cmd"
	"github.com/ironfell/chronicle/internal/services/chronicle/app"
)

// Config holds chronicle command configuration.
type Config struct {
	Transport  string `env:"IRONFELL_CHRONICLE_TRANSPORT" envDefault:"stdio"`
	HealthAddr string `env:"IRONFELL_CHRONICLE_HEALTH_ADDR"`
	Locale     string `env:"IRONFELL_CHRONICLE_LOCALE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "The MCP transport to serve on")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "The gRPC health listen address (empty disables it)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "The BCP 47 locale used to phrase entry text")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the chronicle service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceChronicle, func(ctx context.Context) error {
		return app.Run(ctx, app.Config{
			Transport:  cfg.Transport,
			HealthAddr: cfg.HealthAddr,
			Locale:     cfg.Locale,
		})
	})
}
