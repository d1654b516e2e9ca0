package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by primary key.
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByEmail filters users by their unique email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// OwnedBy filters rows belonging to one user.
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ForChild filters results belonging to one child profile.
type ForChild struct {
	ChildID uuid.UUID
}

func (s ForChild) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("child_id = ?", s.ChildID)
}
