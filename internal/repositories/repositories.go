package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/moviefav/internal/models"
)

var (
	_ models.Repository[*models.Account]  = (*UserRepository)(nil)
	_ models.Repository[*models.Favorite] = (*FavoriteRepository)(nil)
)

// expectOne returns notFound wrapped with key when result touched no rows.
func expectOne(result sql.Result, notFound error, key any) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %v", notFound, key)
	}
	return nil
}
