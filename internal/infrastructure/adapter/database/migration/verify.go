package migration

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// VerifySchema checks that every model table and column exists
func VerifySchema(db *gorm.DB) error {
	migrator := db.Migrator()

	var missing []string
	for _, value := range append(model.All(), &model.SchemaMigration{}) {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(value); err != nil {
			return fmt.Errorf("parse model %T: %w", value, err)
		}

		if !migrator.HasTable(stmt.Schema.Table) {
			missing = append(missing, stmt.Schema.Table)
			continue
		}
		for _, column := range stmt.Schema.DBNames {
			if !migrator.HasColumn(value, column) {
				missing = append(missing, stmt.Schema.Table+"."+column)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema is missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
