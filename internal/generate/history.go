package generate

import (
	"fmt"
	"text/tabwriter"

	"github.com/phravins/landinggen/pkg/utils"
	"github.com/spf13/cobra"
)

func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently generated components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			entries, err := store.Load()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No components generated yet.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tCOMPONENT\tSOURCE\tBYTES")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Component, e.Source, e.Bytes)
			}
			return w.Flush()
		},
	}

	var days int
	clean := &cobra.Command{
		Use:   "clean",
		Short: "Forget entries older than --days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			removed, err := store.DeleteOld(days)
			if err != nil {
				return err
			}
			utils.FprintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Removed %d entries", removed))
			return nil
		},
	}
	clean.Flags().IntVar(&days, "days", 30, "Keep entries newer than this many days")
	cmd.AddCommand(clean)
	return cmd
}
