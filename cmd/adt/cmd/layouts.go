package cmd

import (
	"fmt"
	"strconv"

	"github.com/pavanmanishd/adt"
	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List available layouts",
	Long:  `List the built-in layouts and any layouts defined in the configuration file.`,
	Args:  cobra.NoArgs,
	RunE:  runLayouts,
}

func runLayouts(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	rows := adt.NewArray[string](0)
	for _, name := range cfg.LayoutNames() {
		l, err := cfg.Layout(name)
		if err != nil {
			return err
		}
		if err := rows.Push(describeLayout(name, l)); err != nil {
			return err
		}
	}

	listing, _ := adt.LookupPreset(adt.LayoutString)
	return adt.FprintArray(cmd.OutOrStdout(), listing, rows)
}

func describeLayout(name string, l adt.Layout) string {
	return fmt.Sprintf("%-10s columns=%d width=%d separator=%s wrap=%t numbered=%t",
		name, l.Columns, l.Width, strconv.Quote(l.Separator), l.SeparatorAtWrap, l.Numbered)
}
