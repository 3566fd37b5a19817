package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tutils/tperm/checkpoint"
	"github.com/tutils/tperm/counter"
	"github.com/tutils/tperm/counter/period"
	"github.com/tutils/tperm/perm"
	"github.com/tutils/tperm/stream"
)

const defaultCount = 20

var errTerminal = errors.New("refusing to write binary output to a terminal (use --force)")

var (
	count           uint64
	binaryOut       bool
	force           bool
	showStats       bool
	resumeToken     string
	printCheckpoint bool
	statsInterval   time.Duration
)

func initGenerateFlags(c *cobra.Command) {
	flags := c.Flags()
	flags.Uint64VarP(&count, "count", "n", defaultCount, "number of values; with -b an unset count streams forever")
	flags.BoolVarP(&binaryOut, "binary", "b", false, "write little-endian values instead of hex pairs")
	flags.BoolVar(&force, "force", false, "write binary output even to a terminal")
	flags.BoolVar(&showStats, "stats", false, "log throughput and rejection rounds")
	flags.DurationVar(&statsInterval, "stats-interval", 5*time.Second, "interval between --stats reports")
	flags.StringVar(&resumeToken, "resume", "", "continue from a checkpoint token")
	flags.BoolVar(&printCheckpoint, "checkpoint", false, "print a resume token to stderr when done")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var (
		stats   = cfg.GetBool("stats")
		values  = period.NewPeriodCounter(time.Second)
		rejects = period.NewPeriodCounter(time.Second)
		opts    []perm.Option
		encOpts []stream.Option
		s       settings
		g       *perm.Generator
		err     error
	)
	if stats {
		opts = append(opts, perm.WithRejectCounter(rejects))
		encOpts = append(encOpts, stream.WithCounter(values))
	}

	if token := cfg.GetString("resume"); token != "" {
		if len(args) > 0 {
			return errors.New("--resume takes no positional arguments")
		}
		cp, err := checkpoint.Decode(token)
		if err != nil {
			return err
		}
		if g, err = cp.Generator(opts...); err != nil {
			return err
		}
		s = settings{max: cp.Max, seed: cp.Seed, source: cp.Source}
	} else {
		if s, err = resolveSettings(cfg, args, time.Now); err != nil {
			return err
		}
		if g, err = s.generator(opts...); err != nil {
			return err
		}
	}
	logrus.WithFields(logrus.Fields{
		"max":      s.max,
		"seed":     s.seed,
		"source":   s.source,
		"bits":     g.Bits(),
		"position": g.Position(),
	}).Debug("generator ready")

	out := cmd.OutOrStdout()
	n := cfg.GetUint64("count")
	var enc stream.Encoder
	if cfg.GetBool("binary") {
		if !cfg.GetBool("force") && isTerminal(out) {
			return errTerminal
		}
		if !cfg.IsSet("count") {
			n = 0
		}
		enc = stream.NewBinaryEncoder(out, g.Bits(), encOpts...)
	} else {
		enc = stream.NewHexEncoder(out, g, encOpts...)
	}

	if stats {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go reportStats(ctx, cfg.GetDuration("stats-interval"), values, rejects)
	}

	start := time.Now()
	if err := stream.Copy(enc, g, n); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if stats {
		logStats(values, rejects).WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("done")
	}
	if cfg.GetBool("checkpoint") {
		token, err := checkpoint.Of(g, s.seed, s.source).Encode()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), token)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func logStats(values, rejects counter.Counter) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"values":      values.Value(),
		"values/s":    values.RatePerSec(),
		"rejections":  rejects.Value(),
		"rejection/s": rejects.RatePerSec(),
	})
}

func reportStats(ctx context.Context, interval time.Duration, values, rejects counter.Counter) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logStats(values, rejects).Info("stats")
		}
	}
}
