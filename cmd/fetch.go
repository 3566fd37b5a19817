package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tutils/tperm/server"
)

const defaultConnectAddress = "ws://127.0.0.1:8080/stream"

var (
	connectAddress string
	fetchCount     uint64
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Read values from a tperm server",
	Long: `Connect to a tperm server and print the values it streams, one hex value
per line. --max, --seed and --source are passed through to the server; without
--seed the server picks one and logs it.`,
	Example: "  tperm fetch --connect ws://127.0.0.1:8080/stream --max 1000 -n 10",
	Args:    cobra.NoArgs,
	RunE:    runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	flags := fetchCmd.Flags()
	flags.StringVarP(&connectAddress, "connect", "c", defaultConnectAddress, "server websocket address")
	flags.Uint64VarP(&fetchCount, "count", "n", defaultCount, "number of values (0 reads until the server stops)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	q := server.Query{
		Max:    ^uint64(0),
		Source: cfg.GetString("source"),
		Count:  cfg.GetUint64("count"),
	}
	if s := cfg.GetString("max"); s != "" {
		v, err := parseUint("max", s)
		if err != nil {
			return err
		}
		q.Max = v
	}
	if s := cfg.GetString("seed"); s != "" {
		v, err := parseUint("seed", s)
		if err != nil {
			return err
		}
		q = q.WithSeed(v)
	}

	c, err := server.Dial(cmd.Context(), cfg.GetString("connect"), q)
	if err != nil {
		return err
	}
	defer c.Close()
	logrus.WithFields(logrus.Fields{
		"session": c.Session,
		"seed":    c.Seed,
		"max":     c.Max,
	}).Info("connected")

	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()
	for i := uint64(0); q.Count == 0 || i < q.Count; i++ {
		v, err := c.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%016x\n", v)
	}
	return nil
}
