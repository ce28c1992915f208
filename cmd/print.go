package cmd

import (
	"fmt"

	"github.com/jdlms/flexheader/internal/render"
	"github.com/jdlms/flexheader/internal/sample"

	"github.com/spf13/cobra"
)

func newPrintCmd(c *cli) *cobra.Command {
	var (
		format      string
		noUppercase bool
	)

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the table",
		Long:  "Write the sample table with its merged header cells as box-drawn text or HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := sample.New()
			if err != nil {
				return fmt.Errorf("building sample table: %w", err)
			}

			opts := render.Options{UppercaseHeaders: c.settings.UppercaseHeaders && !noUppercase}
			switch format {
			case "text":
				return render.Text(cmd.OutOrStdout(), t, opts)
			case "html":
				return render.HTML(cmd.OutOrStdout(), t, opts)
			default:
				return fmt.Errorf("unknown format %q, want text or html", format)
			}
		},
	}
	printCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or html")
	printCmd.Flags().BoolVar(&noUppercase, "no-uppercase", false, "keep header labels as defined")
	return printCmd
}
