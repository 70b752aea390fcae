package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newBillsCommand(deps commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Manage recurring bills",
	}
	cmd.AddCommand(newBillsRollCommand(deps))
	return cmd
}

func newBillsRollCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "roll",
		Short: "Advance overdue bills to their next due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(deps.globals)
			if err != nil {
				return err
			}
			defer rt.close()

			// Roll explicitly below so the summary reflects this run
			rt.cfg.Ledger.RollBillsOnInit = false
			services, err := rt.app.Services(cmd.Context())
			if err != nil {
				return err
			}

			result, err := services.Bills.RollForward(cmd.Context(), rt.clock.Now())
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(deps.out, "checked=%d rolled=%d\n", result.Checked, len(result.Rolled)); err != nil {
				return err
			}
			for _, b := range result.Rolled {
				if _, err := fmt.Fprintf(deps.out, "  %s -> %s\n", b.Name, b.NextDueDate.Format(time.DateOnly)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
