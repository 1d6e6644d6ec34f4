package cmd

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/etnz/advisor/internal/server"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type serveCmd struct {
	port int
	dev  bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the analysis over HTTP" }
func (*serveCmd) Usage() string {
	return `edge serve [-port <port>] [-dev]

  Serve the analysis API:
    GET  /health
    POST /api/analyze   {"portfolio": {...}}
    POST /api/chat      {"analysis": {...}, "portfolio": {...}, "messages": [...]}
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", 0, "port to listen on. Defaults to the configured server.port")
	f.BoolVar(&c.dev, "dev", false, "development mode, disables response compression")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := initApp(); err != nil {
		return fail("Error: %v", err)
	}
	port := cfg.Server.Port
	if c.port > 0 {
		port = c.port
	}

	srv := server.New(server.Config{
		Port:     port,
		Log:      log,
		Analyzer: newAnalyzer(),
		Narrator: newNarrator(ctx, cfg, log),
		Chat:     newChat(ctx, cfg, log),
		DevMode:  c.dev || cfg.Server.DevMode,
		Currency: cfg.Currency,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server failed")
		return subcommands.ExitFailure
	}
	log.Info().Msg("Server stopped")
	return subcommands.ExitSuccess
}
