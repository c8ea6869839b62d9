package models

import (
	"time"
)

// Event is identified by a caller-chosen slug that doubles as the public
// confirmation link token. Date is free text and stored verbatim.
type Event struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Date          string         `gorm:"not null" json:"date"`
	CreatedAt     time.Time      `json:"-"`
	Confirmations []Confirmation `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

// EventDetails is the public projection of an event.
type EventDetails struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (event *Event) Details() EventDetails {
	return EventDetails{Name: event.Name, Date: event.Date}
}
