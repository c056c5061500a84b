package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flexlayout/internal/server"
	"github.com/matzehuels/flexlayout/pkg/cache"
	"github.com/matzehuels/flexlayout/pkg/observability"
	"github.com/matzehuels/flexlayout/pkg/pipeline"
)

// serveCommand creates the serve command, which exposes the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		prefix   string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and renders over HTTP",
		Long: `Serve layouts and renders over HTTP.

  POST /v1/layout            document in, layout JSON out
  POST /v1/render/{format}   document in, artifact out

With --redis, layouts and artifacts are cached in redis under --cache-prefix so
that several instances can share them. Otherwise the local file cache is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				store cache.Cache
				keyer cache.Keyer
				err   error
			)
			switch {
			case redisURL != "":
				store, err = cache.NewRedisCache(ctx, redisURL)
				if err != nil {
					return fmt.Errorf("connect redis: %w", err)
				}
				keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), prefix)
				c.Logger.Info("using redis cache", "prefix", prefix)
			default:
				store, err = newCache(noCache)
				if err != nil {
					return err
				}
			}

			runner := pipeline.NewRunner(store, keyer, c.Logger)
			defer runner.Close()

			hooks := observability.NewLogHooks(c.Logger)
			hooks.Register()

			return server.New(runner, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis URL for a shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&prefix, "cache-prefix", appName+":", "key prefix in the shared cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
