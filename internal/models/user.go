package models

import (
	"errors"

	"github.com/chidupudi/ai-assistant/internal/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a studio account (photographer side). Clients never get accounts;
// they enter through a project PIN.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

// SetPassword stores a bcrypt hash of the plaintext password.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// GetUserByEmail retrieves a user by email; nil without error when absent.
func GetUserByEmail(email string) (*User, error) {
	var user User
	db := database.GetDB()
	if db == nil {
		return nil, errors.New("database connection not initialized")
	}

	result := db.Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}
