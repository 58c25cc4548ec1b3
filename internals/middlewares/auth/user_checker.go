package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserInactive = errors.New("user inactive")

// ActiveUserChecker looks the token's user up in users.
func ActiveUserChecker(db *gorm.DB) func(ctx context.Context, userID uuid.UUID) error {
	return func(ctx context.Context, userID uuid.UUID) error {
		var user struct {
			IsActive bool
		}
		if err := db.WithContext(ctx).
			Table("users").
			Select("is_active").
			Where("id = ?", userID).
			Take(&user).Error; err != nil {
			return err
		}
		if !user.IsActive {
			return ErrUserInactive
		}
		return nil
	}
}
