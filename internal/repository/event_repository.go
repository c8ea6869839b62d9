package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fzambone/event-attendance/internal/apperr"
	"github.com/fzambone/event-attendance/internal/models"
)

// EventRepository handles database operations for events.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns every event, newest first.
func (r *EventRepository) List() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error retrieving events.", err)
	}
	return events, nil
}

// Create inserts a new event. The slug is caller-chosen, so a duplicate is
// a conflict the caller must be able to tell apart from other failures.
func (r *EventRepository) Create(event *models.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Newf(apperr.Conflict, "Event id %q already exists.", event.ID)
		}
		return apperr.Wrap(apperr.Internal, "Error creating event.", err)
	}
	return nil
}

// GetWithConfirmations loads one event and its confirmations, newest
// confirmation first.
func (r *EventRepository) GetWithConfirmations(eventID string) (*models.Event, error) {
	var event models.Event
	err := r.db.
		Preload("Confirmations", func(db *gorm.DB) *gorm.DB {
			return db.Order("confirmed_at DESC")
		}).
		Where("id = ?", eventID).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Event id not found.")
		}
		return nil, apperr.Wrap(apperr.Internal, "Error retrieving event.", err)
	}
	return &event, nil
}

// Delete removes an event and all of its confirmations in one
// transaction, so a crash can never leave orphaned confirmations behind.
func (r *EventRepository) Delete(eventID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&models.Confirmation{}).Error; err != nil {
			return apperr.Wrap(apperr.Internal, "Error deleting event confirmations.", err)
		}
		result := tx.Where("id = ?", eventID).Delete(&models.Event{})
		if result.Error != nil {
			return apperr.Wrap(apperr.Internal, "Error deleting event.", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.Newf(apperr.NotFound, "Event with id %q not found.", eventID)
		}
		return nil
	})
}
