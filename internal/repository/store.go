package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// insertRow adds one row to table and returns the generated id.
// columns and values are matched by position.
func insertRow(ctx context.Context, db *gorm.DB, table string, columns []string, values ...interface{}) (int64, error) {
	if len(columns) == 0 || len(columns) != len(values) {
		return 0, fmt.Errorf("insert into %s: %d columns for %d values", table, len(columns), len(values))
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table, strings.Join(columns, ", "), placeholders)

	var id int64
	if err := db.WithContext(ctx).Raw(query, values...).Scan(&id).Error; err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, translateError(err))
	}
	return id, nil
}

// existsRow reports whether any row in table has column equal to value
func existsRow(ctx context.Context, db *gorm.DB, table, column string, value interface{}) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)", table, column)

	var exists bool
	if err := db.WithContext(ctx).Raw(query, value).Scan(&exists).Error; err != nil {
		return false, fmt.Errorf("check %s.%s: %w", table, column, err)
	}
	return exists, nil
}
