package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"

	"golang.org/x/text/language"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config holds chronicle app configuration.
type Config struct {
	// Transport selects the MCP transport; only "stdio" is supported.
	Transport string
	// HealthAddr is the listen address of the gRPC health endpoint; empty
	// disables it.
	HealthAddr string
	// Locale is the BCP 47 tag used to phrase entry text; empty means
	// English.
	Locale string
}

// Run starts the chronicle app and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	transport := cfg.Transport
	if transport == "" {
		transport = "stdio"
	}
	if transport != "stdio" {
		return fmt.Errorf("transport %q is not supported", transport)
	}

	locale, err := parseLocale(cfg.Locale)
	if err != nil {
		return err
	}

	if cfg.HealthAddr != "" {
		stop, bound, err := serveHealth(cfg.HealthAddr)
		if err != nil {
			return err
		}
		defer stop()
		log.Printf("health listener serving on %s", bound)
	}

	return New(locale).Serve(ctx)
}

// parseLocale resolves the configured locale tag, defaulting to English.
func parseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Tag{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return tag, nil
}

// serveHealth starts a gRPC health endpoint for deployment probes. The
// returned stop function drains in-flight checks.
func serveHealth(addr string) (stop func(), bound string, err error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("chronicle", grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Printf("health listener stopped: %v", err)
		}
	}()

	return grpcServer.GracefulStop, listener.Addr().String(), nil
}
