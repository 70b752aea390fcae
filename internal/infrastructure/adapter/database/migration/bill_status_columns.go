package migration

import (
	"fmt"

	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// billStatusColumns adds bills.paid and bill_payments.status. Each column is
// added only when missing, so databases that already carry them upgrade cleanly.
func billStatusColumns() Migration {
	return Migration{
		Version:     3,
		Description: "add bill paid flag and payment status",
		Up: func(tx *gorm.DB) error {
			if err := addColumnIfMissing(tx, &model.Bill{}, "bills", "paid",
				"BOOLEAN NOT NULL DEFAULT FALSE"); err != nil {
				return err
			}
			return addColumnIfMissing(tx, &model.BillPayment{}, "bill_payments", "status",
				"TEXT NOT NULL DEFAULT 'cleared'")
		},
	}
}

func addColumnIfMissing(tx *gorm.DB, value any, table, column, definition string) error {
	if tx.Migrator().HasColumn(value, column) {
		return nil
	}
	if err := tx.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition)).Error; err != nil {
		return fmt.Errorf("add %s.%s: %w", table, column, err)
	}
	return nil
}
