package usecase

import (
	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

// canModify - общий предикат авторизации: владелец записи или администратор.
func canModify(actor *domain.Claims, ownerID uuid.UUID) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.UserID == ownerID
}
