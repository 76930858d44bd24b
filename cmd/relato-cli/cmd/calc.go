package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"relato/internal/domain"
)

var calcCmd = &cobra.Command{
	Use:   "calc [tons]",
	Short: "Square meters of WPC board from tons of cisco",
	Long: `Convert tons of coffee cisco into square meters of WPC board.
Each square meter takes 9 kg of cisco; the total is also shown rounded to
the nearest thousand.

Examples:
  relato-cli calc
  relato-cli calc 250`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.DefaultCiscoInput
		if len(args) == 1 {
			input = args[0]
		}
		f := GetFormatter()
		m := domain.CalculateArea(input)

		fmt.Fprintf(cmd.OutOrStdout(), "%s t  %s m²  (≈ %s m²)\n",
			f.Number(m.InputTons),
			f.Decimal(m.SqMetersExact, 2),
			f.Decimal(m.SqMetersRounded, 0))
		return nil
	},
}

var urbanCmd = &cobra.Command{
	Use:   "urban [tons]",
	Short: "Urban furniture equivalent of tons of cisco",
	Long: `Convert tons of coffee cisco into benches, bus shelters and meters
of decking.

Examples:
  relato-cli urban
  relato-cli urban 120`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.DefaultUrbanInput
		if len(args) == 1 {
			input = args[0]
		}
		f := GetFormatter()
		m := domain.CalculateUrban(input)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "benches      %s\n", f.Count(m.Benches, true, ""))
		fmt.Fprintf(out, "shelters     %s\n", f.Count(m.Shelters, true, ""))
		fmt.Fprintf(out, "deck meters  %s\n", f.Count(m.DeckMeters, true, ""))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(urbanCmd)
}
