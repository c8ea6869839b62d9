package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fzambone/event-attendance/internal/apperr"
	"github.com/fzambone/event-attendance/internal/models"
)

// ConfirmationRepository handles database operations for confirmations.
// Every lookup is scoped by (eventID, confirmationID) jointly, never by
// the confirmation id alone, so an id that exists under a different event
// behaves exactly like one that does not exist at all.
type ConfirmationRepository struct {
	db *gorm.DB
}

func NewConfirmationRepository(db *gorm.DB) *ConfirmationRepository {
	return &ConfirmationRepository{db: db}
}

// Create inserts a confirmation for an existing event. The id and
// timestamp are assigned on insert.
func (r *ConfirmationRepository) Create(eventID, name string, guests int) (*models.Confirmation, error) {
	var exists bool
	err := r.db.Model(&models.Event{}).
		Select("count(*) > 0").
		Where("id = ?", eventID).
		Find(&exists).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error checking event.", err)
	}
	if !exists {
		return nil, apperr.New(apperr.NotFound, "Event id not found.")
	}

	confirmation := models.Confirmation{
		EventID: eventID,
		Name:    name,
		Guests:  guests,
	}
	if err := r.db.Create(&confirmation).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error creating confirmation.", err)
	}
	return &confirmation, nil
}

// Update changes name and guests in place. ConfirmedAt keeps its original
// value.
func (r *ConfirmationRepository) Update(eventID, confirmationID, name string, guests int) (*models.Confirmation, error) {
	result := r.db.Model(&models.Confirmation{}).
		Where("id = ? AND event_id = ?", confirmationID, eventID).
		Updates(map[string]any{"name": name, "guests": guests})
	if result.Error != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error updating confirmation.", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.New(apperr.NotFound, "Confirmation not found for this event.")
	}

	return r.Get(eventID, confirmationID)
}

// Delete removes exactly one confirmation.
func (r *ConfirmationRepository) Delete(eventID, confirmationID string) error {
	result := r.db.Where("id = ? AND event_id = ?", confirmationID, eventID).Delete(&models.Confirmation{})
	if result.Error != nil {
		return apperr.Wrap(apperr.Internal, "Error deleting confirmation.", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Confirmation not found for this event.")
	}
	return nil
}

// Get fetches one confirmation under the joint scope.
func (r *ConfirmationRepository) Get(eventID, confirmationID string) (*models.Confirmation, error) {
	var confirmation models.Confirmation
	err := r.db.Where("id = ? AND event_id = ?", confirmationID, eventID).First(&confirmation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Confirmation not found for this event.")
		}
		return nil, apperr.Wrap(apperr.Internal, "Error retrieving confirmation.", err)
	}
	return &confirmation, nil
}
