// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/tenancy/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories translate into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Models lists every table managed by this service, in dependency order.
var Models = []any{
	&model.Organization{},
	&model.User{},
	&model.Plan{},
	&model.Subscription{},
	&model.UserSettings{},
}

// Migrate creates or updates the schema for all models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	for _, m := range Models {
		if err := db.WithContext(ctx).AutoMigrate(m); err != nil {
			return fmt.Errorf("migrating %T: %w", m, err)
		}
	}
	slog.InfoContext(ctx, "Schema migrated", "tables", len(Models))
	return nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || isPgError(err, pgUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || isPgError(err, pgForeignKeyViolation)
}
