package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Confirmation is a single RSVP: who is coming and how many people they
// bring, including themselves. ConfirmedAt is set once on insert and is
// never touched by updates.
type Confirmation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID     string    `gorm:"not null;index" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Guests      int       `gorm:"not null" json:"guests"`
	ConfirmedAt time.Time `gorm:"autoCreateTime" json:"confirmed_at"`
}

func (confirmation *Confirmation) BeforeCreate(tx *gorm.DB) (err error) {
	if confirmation.ID == uuid.Nil {
		confirmation.ID = uuid.New()
	}
	return
}
