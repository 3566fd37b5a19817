package cmd

import (
	"bytes"
	"io"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/tutils/tperm/entropy"
	"github.com/tutils/tperm/perm"
	"github.com/tutils/tperm/server"
)

func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with args and returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err = Run(append([]string{"--config", "", "--log-level", "error"}, args...))
	return out.String(), errOut.String(), err
}

// parsePairs parses "value  position" lines.
func parsePairs(t *testing.T, s string) (values, positions []uint64) {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		fields := strings.Fields(line)
		require.Len(t, fields, 2, line)
		v, err := strconv.ParseUint(fields[0], 16, 64)
		require.NoError(t, err)
		p, err := strconv.ParseUint(fields[1], 16, 64)
		require.NoError(t, err)
		values = append(values, v)
		positions = append(positions, p)
	}
	return values, positions
}

func TestParseUint(t *testing.T) {
	for in, want := range map[string]uint64{
		"42":                 42,
		"0x10":               16,
		"010":                8,
		"0xffffffffffffffff": ^uint64(0),
	} {
		got, err := parseUint("max", in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "-1", "ten", "0x1ffffffffffffffff"} {
		_, err := parseUint("max", in)
		require.Error(t, err, in)
	}
}

func TestResolveSettings(t *testing.T) {
	now := func() time.Time { return time.Unix(1700000000, 0) }

	v := viper.New()
	v.Set("source", "lcg")
	s, err := resolveSettings(v, []string{"255", "7"}, now)
	require.NoError(t, err)
	require.Equal(t, settings{max: 255, seed: 7, source: "lcg"}, s)

	v = viper.New()
	s, err = resolveSettings(v, nil, now)
	require.NoError(t, err)
	require.Equal(t, ^uint64(0), s.max)
	require.Equal(t, uint64(1700000000), s.seed)

	v.Set("max", "0x1f")
	v.Set("seed", "3")
	s, err = resolveSettings(v, nil, now)
	require.NoError(t, err)
	require.Equal(t, uint64(31), s.max)
	require.Equal(t, uint64(3), s.seed)

	// arguments win over config
	s, err = resolveSettings(v, []string{"9"}, now)
	require.NoError(t, err)
	require.Equal(t, uint64(9), s.max)
	require.Equal(t, uint64(3), s.seed)

	_, err = resolveSettings(v, []string{"nine"}, now)
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "9", "5", "-n", "10")
	require.NoError(t, err)

	values, positions := parsePairs(t, out)
	require.Len(t, values, 10)
	seen := make(map[uint64]bool)
	for i, v := range values {
		require.LessOrEqual(t, v, uint64(9))
		require.False(t, seen[v], "repeated %d", v)
		seen[v] = true
		require.Equal(t, uint64(i), positions[i])
	}

	again, _, err := execute(t, "9", "5", "-n", "10")
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestGenerateDefaultCount(t *testing.T) {
	out, _, err := execute(t, "1000", "1", "--source", "splitmix")
	require.NoError(t, err)
	values, _ := parsePairs(t, out)
	require.Len(t, values, defaultCount)

	g := perm.New(1000, perm.WithSource(entropy.NewSplitMixSource(1)))
	for _, v := range values {
		require.Equal(t, g.Next(), v)
	}
}

func TestGenerateBinary(t *testing.T) {
	out, _, err := execute(t, "255", "1", "-b", "-n", "4")
	require.NoError(t, err)
	require.Len(t, out, 4)

	g := perm.New(255, perm.WithSource(entropy.NewPCGSource(1)))
	for i := 0; i < 4; i++ {
		require.Equal(t, byte(g.Next()), out[i])
	}

	out, _, err = execute(t, "0xffff", "1", "-b", "-n", "3")
	require.NoError(t, err)
	require.Len(t, out, 6)
}

func TestCheckpointResume(t *testing.T) {
	first, token, err := execute(t, "9", "5", "-n", "4", "--checkpoint")
	require.NoError(t, err)
	token = strings.TrimSpace(token)
	require.True(t, strings.HasPrefix(token, "@"), token)

	rest, _, err := execute(t, "--resume", token, "-n", "6")
	require.NoError(t, err)

	values, positions := parsePairs(t, first+rest)
	require.Len(t, values, 10)
	seen := make(map[uint64]bool)
	for i, v := range values {
		seen[v] = true
		require.Equal(t, uint64(i), positions[i])
	}
	require.Len(t, seen, 10)

	_, _, err = execute(t, "--resume", token, "9")
	require.Error(t, err)
	_, _, err = execute(t, "--resume", "@garbage")
	require.Error(t, err)
}

func TestUndo(t *testing.T) {
	out, _, err := execute(t, "1000", "42", "-n", "5")
	require.NoError(t, err)
	values, _ := parsePairs(t, out)

	args := []string{"undo", "1000", "42"}
	for _, v := range values {
		args = append(args, "0x"+strconv.FormatUint(v, 16))
	}
	out, _, err = execute(t, args...)
	require.NoError(t, err)

	got, positions := parsePairs(t, out)
	require.Equal(t, values, got)
	require.Equal(t, []uint64{0, 1, 2, 3, 4}, positions)
}

func TestUndoOutOfRange(t *testing.T) {
	_, _, err := execute(t, "undo", "10", "1", "11")
	require.ErrorIs(t, err, perm.ErrOutOfRange)

	_, _, err = execute(t, "undo", "10", "1")
	require.Error(t, err)
}

func TestUndoNeedsExplicitArguments(t *testing.T) {
	_, _, err := execute(t, "undo", "10", "", "3")
	require.ErrorContains(t, err, "invalid seed")

	_, _, err = execute(t, "undo", "", "1", "3")
	require.ErrorContains(t, err, "invalid max")

	_, _, err = execute(t, "undo", "10", "1", "")
	require.ErrorContains(t, err, "invalid value")
}

func TestRunReturnsError(t *testing.T) {
	resetFlags(rootCmd)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	err := Run([]string{"--log-level", "error", "undo", "10", "1", "11"})
	require.ErrorIs(t, err, perm.ErrOutOfRange)

	err = Run([]string{"--log-level", "error", "undo", "10", "1", "3"})
	require.NoError(t, err)
}

func TestUnknownSource(t *testing.T) {
	_, _, err := execute(t, "9", "1", "--source", "nope")
	require.ErrorIs(t, err, entropy.ErrUnknownSource)
}

func TestFetch(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	srv, err := server.New(server.WithListenAddress("ws://127.0.0.1:0/stream"), server.WithLogger(l))
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/stream"

	out, _, err := execute(t, "fetch", "--connect", wsURL, "--max", "99", "--seed", "3", "-n", "10")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	g := perm.New(99, perm.WithSource(entropy.NewPCGSource(3)))
	for _, line := range lines {
		v, err := strconv.ParseUint(line, 16, 64)
		require.NoError(t, err)
		require.Equal(t, g.Next(), v)
	}
}
