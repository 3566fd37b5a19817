package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo max seed value...",
	Short: "Recover the positions of emitted values",
	Long: `Print "value  position" for each value, where position is the index at
which the generator built from max, seed and --source emitted it.`,
	Example: "  tperm undo 1000 42 0x2b7 17",
	Args:    cobra.MinimumNArgs(3),
	RunE:    runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	max, err := parseUint("max", args[0])
	if err != nil {
		return err
	}
	seed, err := parseUint("seed", args[1])
	if err != nil {
		return err
	}
	g, err := settings{max: max, seed: seed, source: cfg.GetString("source")}.generator()
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()
	for _, arg := range args[2:] {
		v, err := parseUint("value", arg)
		if err != nil {
			return err
		}
		p, err := g.UndoChecked(v)
		if err != nil {
			return fmt.Errorf("undo %#x: %w", v, err)
		}
		fmt.Fprintf(w, "%016x  %016x\n", v, p)
	}
	return nil
}
