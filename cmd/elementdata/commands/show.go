package commands

import (
	"elementdata/lib/periodic"
	"elementdata/lib/serviceutil"
	"elementdata/services/elements"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showFile *string

func init() {
	showFile = showCmd.Flags().String("file", "element_data.json", "The dataset file to display.")
	rootCmd.AddCommand(showCmd)
}

func formatValue(v int) string {
	if v == periodic.Unknown {
		return "-"
	}
	return fmt.Sprint(v)
}

func formatColor(c periodic.Color) string {
	if c == periodic.UnknownColor {
		return "-"
	}
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

var showCmd = &cobra.Command{
	Use:   "show [--file <path/to/element_data.json>]",
	Short: "Prints a scraped element dataset as a table.",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := elements.ReadFile(*showFile)
		if err != nil {
			serviceutil.Fatal("failed to read dataset", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{
			"Symbol", "Color", "Van der Waals (pm)",
			"Single bond (pm)", "Double bond (pm)", "Triple bond (pm)",
		})

		for _, symbol := range data.Symbols() {
			element, _ := data.Get(symbol)

			single, double, triple := "-", "-", "-"
			if element.Covalent != nil {
				single = formatValue(element.Covalent.SingleBond)
				double = formatValue(element.Covalent.DoubleBond)
				triple = formatValue(element.Covalent.TripleBond)
			}

			t.AppendRow(table.Row{
				symbol,
				formatColor(element.Color),
				formatValue(element.VanDerWaal),
				single, double, triple,
			})
		}

		t.Render()
	},
}
