package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Роли пользователей маркетплейса.
const (
	RoleBuyer     = "buyer"
	RoleSeller    = "seller"
	RoleAgent     = "agent"
	RoleLandlord  = "landlord"
	RoleTenant    = "tenant"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// Статусы аккаунта. Удаление пользователя — это смена статуса,
// а не удаление строки.
const (
	AccountActive    = "active"
	AccountPending   = "pending"
	AccountSuspended = "suspended"
	AccountBanned    = "banned"
	AccountDeleted   = "deleted"
)

// User - основная доменная сущность пользователя
type User struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	Phone         string
	Role          string
	AccountStatus string
	// Основная локация пользователя, используется для поиска "рядом со мной".
	Location          *Coordinate
	SearchPreferences SearchPreferences
	PrivacyLevel      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SearchPreferences — сохраненные предпочтения поиска жилья.
type SearchPreferences struct {
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	MinBedrooms  *int     `json:"min_bedrooms,omitempty"`
	MinBathrooms *float64 `json:"min_bathrooms,omitempty"`
}

// Claims - это данные, которые мы "зашиваем" в JWT токен.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// IsAdmin сообщает, имеет ли пользователь административные права.
func (c *Claims) IsAdmin() bool {
	return c != nil && (c.Role == RoleAdmin || c.Role == RoleModerator)
}

// NewUser создает нового пользователя. Хэширование пароля происходит здесь.
func NewUser(email, password, role string) (*User, error) {
	if role == "" {
		role = RoleBuyer
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:            uuid.New(),
		Email:         email,
		PasswordHash:  string(hashedPassword),
		Role:          role,
		AccountStatus: AccountActive,
		PrivacyLevel:  "public",
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CheckPassword сравнивает предоставленный пароль с хэшем, хранящимся у пользователя.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// SoftDelete помечает аккаунт удаленным, сохраняя строку для истории.
func (u *User) SoftDelete() {
	u.AccountStatus = AccountDeleted
	u.UpdatedAt = time.Now().UTC()
}

// IsActive — активен ли аккаунт (не удален и не заблокирован).
func (u *User) IsActive() bool {
	return u.AccountStatus == AccountActive
}
