package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tutils/tperm"
	"github.com/tutils/tperm/counter/period"
	"github.com/tutils/tperm/server"
)

var (
	listenAddress string
	shared        bool
	batch         int
	serveInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stream permutations over websocket",
	Long: `Serve permutations to websocket clients. Each connection gets its own
generator built from its query (max, seed, source, count, format), unless
--shared is set, in which case all clients draw from one generator built from
--max, --seed and --source, so no two clients ever see the same value.
Prometheus metrics are served on /metrics.`,
	Example: `  tperm serve --listen ws://0.0.0.0:8080/stream
  tperm serve --shared --max 0xffffffff --seed 7`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	flags := serveCmd.Flags()
	flags.StringVarP(&listenAddress, "listen", "l", server.DefaultListenAddress, "websocket listen address")
	flags.BoolVar(&shared, "shared", false, "serve every client from one generator")
	flags.IntVar(&batch, "batch", server.DefaultBatch, "values per websocket message")
	flags.DurationVar(&serveInterval, "stats-interval", 30*time.Second, "interval between throughput reports (0 disables)")
}

func runServe(cmd *cobra.Command, args []string) error {
	values := period.NewPeriodCounter(time.Second)
	opts := []server.Option{
		server.WithListenAddress(cfg.GetString("listen")),
		server.WithBatch(cfg.GetInt("batch")),
		server.WithLogger(logrus.StandardLogger()),
		server.WithValueCounter(values),
	}

	if cfg.GetBool("shared") {
		s, err := resolveSettings(cfg, nil, time.Now)
		if err != nil {
			return err
		}
		g, err := s.generator()
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"max":    s.max,
			"seed":   s.seed,
			"source": s.source,
		}).Info("shared generator")
		opts = append(opts, server.WithSharedGenerator(tperm.NewSyncGenerator(g)))
	}

	srv, err := server.New(opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("shutdown")
		}
	}()

	if interval := cfg.GetDuration("stats-interval"); interval > 0 {
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					logrus.WithFields(logrus.Fields{
						"values":   values.Value(),
						"values/s": values.RatePerSec(),
					}).Info("served")
				}
			}
		}()
	}

	logrus.WithField("addr", srv.Addr()).Info("listening")
	return srv.ListenAndServe()
}
