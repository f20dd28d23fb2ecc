package cmd

import (
	"fmt"

	"github.com/pavanmanishd/adt"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print standard input using a column layout",
	Long: `Read lines from standard input and print them using a layout.

Without --layout the configured default layout is used, or small-int
when --numeric is given.`,
	Example: `  # Number each line
  printf 'b\na\n' | adt render --sort

  # Five integers per line
  seq 12 | adt render --numeric --layout small-int`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("layout", "l", "", "layout name (see 'adt layouts')")
	renderCmd.Flags().BoolP("sort", "s", false, "sort before printing")
	renderCmd.Flags().BoolP("numeric", "n", false, "treat lines as integers")
	renderCmd.Flags().BoolP("reverse", "r", false, "print in reverse order")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := GetLogger().WithCommand("render")
	cfg := GetConfig()

	layoutName, _ := cmd.Flags().GetString("layout")
	sorted, _ := cmd.Flags().GetBool("sort")
	numeric, _ := cmd.Flags().GetBool("numeric")
	reverse, _ := cmd.Flags().GetBool("reverse")

	if layoutName == "" {
		layoutName = cfg.DefaultLayout
		if numeric {
			layoutName = adt.LayoutSmallInt
		}
	}
	layout, err := cfg.Layout(layoutName)
	if err != nil {
		return err
	}
	if err := layout.Validate(); err != nil {
		return fmt.Errorf("layout %q: %w", layoutName, err)
	}

	lines, err := readLines(cmd.InOrStdin(), cfg.InitialCapacity)
	if err != nil {
		log.Failure("reading input failed", "error", err)
		return err
	}
	log.Buffer("input collected", lines.Metrics())

	out := cmd.OutOrStdout()
	if numeric {
		nums, err := parseNumbers(lines)
		if err != nil {
			return err
		}
		if sorted {
			adt.SortOrdered(nums)
		}
		if reverse {
			if nums, err = reversed(nums); err != nil {
				return err
			}
		}
		log.Buffer("numbers parsed", nums.Metrics(), "layout", layoutName)
		return adt.FprintArray(out, layout, nums)
	}

	if sorted {
		lines.Sort(adt.CompareStrings)
	}
	if reverse {
		if lines, err = reversed(lines); err != nil {
			return err
		}
	}
	return adt.FprintArray(out, layout, lines)
}
