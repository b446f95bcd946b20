package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Sternrassler/brreg-client/pkg/client"
	"github.com/Sternrassler/brreg-client/pkg/logging"
	"github.com/Sternrassler/brreg-client/pkg/metrics"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Flags use the dashed form, env vars the BRREG_ prefix
// with underscores.
const (
	keyBaseURL     = "base_url"
	keyUserAgent   = "user_agent"
	keyTimeout     = "timeout"
	keyCacheTTL    = "cache_ttl"
	keyLogLevel    = "log_level"
	keyPretty      = "pretty"
	keyMetricsAddr = "metrics_addr"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	out    io.Writer
	logger zerolog.Logger

	client  *client.Client
	metrics *http.Server
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}
	var cfgFile string

	root := &cobra.Command{
		Use:          "brreg",
		Short:        "Query the Norwegian Register of Business Enterprises",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context(), cfgFile)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.String("base-url", client.DefaultBaseURL, "registry API root")
	flags.String("user-agent", client.DefaultUserAgent, "User-Agent header")
	flags.Duration("timeout", 30*time.Second, "per request timeout (0 disables)")
	flags.Duration("cache-ttl", 0, "lookup cache TTL (0 disables)")
	flags.String("log-level", string(logging.LevelWarn), "log level: debug, info, warn, error, disabled")
	flags.Bool("pretty", false, "human readable log output")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address while running")

	for key, flag := range map[string]string{
		keyBaseURL:     "base-url",
		keyUserAgent:   "user-agent",
		keyTimeout:     "timeout",
		keyCacheTTL:    "cache-ttl",
		keyLogLevel:    "log-level",
		keyPretty:      "pretty",
		keyMetricsAddr: "metrics-addr",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	a.v.SetEnvPrefix("BRREG")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	root.SetOut(out)
	root.AddCommand(
		newEnhetCmd(a),
		newUnderenhetCmd(a),
		newRollerCmd(a),
		newSearchCmd(a),
	)
	return root
}

// init loads configuration, sets up logging and creates the client.
func (a *app) init(ctx context.Context, cfgFile string) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	level, err := logging.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	logging.Setup(logging.Config{
		Level:  level,
		Pretty: a.v.GetBool(keyPretty),
	})
	a.logger = logging.NewLogger("cli")

	cfg := client.DefaultConfig()
	cfg.BaseURL = a.v.GetString(keyBaseURL)
	cfg.UserAgent = a.v.GetString(keyUserAgent)
	cfg.Timeout = a.v.GetDuration(keyTimeout)
	cfg.LookupCacheTTL = a.v.GetDuration(keyCacheTTL)

	c, err := client.New(cfg)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	a.client = c

	if addr := a.v.GetString(keyMetricsAddr); addr != "" {
		if err := a.serveMetrics(ctx, addr); err != nil {
			return err
		}
	}

	a.logger.Debug().
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Dur("cache_ttl", cfg.LookupCacheTTL).
		Msg("Client configured")
	return nil
}

func (a *app) serveMetrics(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	a.metrics = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := a.metrics.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error().Err(err).Str("addr", addr).Msg("Metrics server failed")
		}
	}()
	a.logger.Info().Str("addr", ln.Addr().String()).Msg("Serving metrics")
	return nil
}

func (a *app) close(ctx context.Context) error {
	if a.metrics != nil {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := a.metrics.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn().Err(err).Msg("Metrics server shutdown")
		}
	}
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

// printJSON writes v as indented JSON.
func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
