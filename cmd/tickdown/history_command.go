package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tickdown/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously rendered animations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No renders recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format(time.DateTime),
					rec.Name,
					rec.Target,
					rec.Timezone,
					strconv.Itoa(rec.Frames),
					strconv.FormatInt(rec.Bytes, 10),
					yesNo(rec.Passed),
					rec.Path,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Created", "Name", "Target", "Zone", "Frames", "Bytes", "Passed", "Path"},
				rows,
				[]columnAlignment{
					alignLeft, alignLeft, alignLeft, alignLeft,
					alignRight, alignRight, alignLeft, alignLeft,
				},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of renders to list (0 for all)")
	return cmd
}
