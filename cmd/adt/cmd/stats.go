package cmd

import (
	"fmt"

	"github.com/pavanmanishd/adt"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show buffer statistics for standard input",
	Long: `Read lines from standard input and report how the containers holding
them are sized: line count, array capacity and utilization, total bytes, and
the longest line with its string capacity.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	log := GetLogger().WithCommand("stats")

	lines, err := readLines(cmd.InOrStdin(), GetConfig().InitialCapacity)
	if err != nil {
		log.Failure("reading input failed", "error", err)
		return err
	}

	total := 0
	longest := adt.NewString()
	for _, line := range lines.All() {
		total += line.Len()
		if line.Len() > longest.Len() {
			if err := longest.CopyFrom(line); err != nil {
				return err
			}
		}
	}

	m := lines.Metrics()
	log.Buffer("input collected", m)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Lines: %d\n", m.Len)
	fmt.Fprintf(out, "Array capacity: %d\n", m.Cap)
	fmt.Fprintf(out, "Array utilization: %.1f%%\n", m.Utilization*100)
	fmt.Fprintf(out, "Total bytes: %d\n", total)
	fmt.Fprintf(out, "Longest line: %+v\n", longest)
	return nil
}
