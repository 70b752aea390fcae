package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(deps.globals)
			if err != nil {
				return err
			}
			defer rt.close()

			applied, err := rt.app.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(deps.out, "applied %d migration(s)\n", applied)
			return err
		},
	}
}

func newSeedCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default user and categories when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(deps.globals)
			if err != nil {
				return err
			}
			defer rt.close()

			result, err := rt.app.Seed(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(deps.out, "user_created=%t categories_created=%d\n",
				result.UserCreated, result.CategoriesCreated)
			return err
		},
	}
}

func newResetCommand(deps commandDeps) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every ledger table (development and test only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("reset deletes all data; pass --yes to confirm")
			}

			rt, err := openRuntime(deps.globals)
			if err != nil {
				return err
			}
			defer rt.close()

			if err := rt.app.ResetDatabase(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(deps.out, "database reset")
			return err
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm the reset")
	return cmd
}
