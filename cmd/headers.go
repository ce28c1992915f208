package cmd

import (
	"fmt"

	"github.com/jdlms/flexheader/internal/render"
	"github.com/jdlms/flexheader/internal/sample"
	log "github.com/sirupsen/logrus"

	"github.com/spf13/cobra"
)

func newHeadersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "headers",
		Short: "List header cells",
		Long:  "List every header slot with its depth, column depth, spans and whether it is rendered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := sample.New()
			if err != nil {
				return fmt.Errorf("building sample table: %w", err)
			}
			render.Report(cmd.OutOrStdout(), render.HeaderReport(t))
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check row span hints",
		Long:  "Compare the row span hint of every column with the row span its header cell is rendered with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := sample.New()
			if err != nil {
				return fmt.Errorf("building sample table: %w", err)
			}
			render.Report(cmd.OutOrStdout(), render.ColumnReport(t))

			mismatches := t.Check()
			for _, m := range mismatches {
				log.WithFields(log.Fields{"column": m.ColumnID, "want": m.Want, "got": m.Got}).Warn("row span hint mismatch")
			}
			if len(mismatches) > 0 {
				return fmt.Errorf("%d column(s) disagree with their row span hint", len(mismatches))
			}
			return nil
		},
	}
}
