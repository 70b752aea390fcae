package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/export"
)

func newExportCommand(deps commandDeps) *cobra.Command {
	var (
		format string
		month  string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write transactions to an xlsx or csv file",
		Example: "  ledger export\n" +
			"  ledger export --format csv --month 2024-05",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(deps.globals)
			if err != nil {
				return err
			}
			defer rt.close()

			if format == "" {
				format = rt.cfg.Export.Format
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			var from time.Time
			if month != "" {
				if from, err = time.ParseInLocation("2006-01", month, time.UTC); err != nil {
					return fmt.Errorf("invalid --month %q, expected YYYY-MM", month)
				}
			}

			if dir == "" {
				dir = rt.cfg.Export.Dir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}

			services, err := rt.app.Services(cmd.Context())
			if err != nil {
				return err
			}
			txns, err := services.Transactions.List(cmd.Context(), from)
			if err != nil {
				return err
			}

			path := filepath.Join(dir, f.FileName(from, rt.clock.Now()))
			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := services.Exporter.Write(cmd.Context(), file, f, txns); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(deps.out, "exported %d transaction(s) to %s\n", len(txns), path)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Export format: xlsx or csv (defaults to export.format)")
	cmd.Flags().StringVar(&month, "month", "", "Only export this month (YYYY-MM)")
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (defaults to export.dir)")
	return cmd
}
