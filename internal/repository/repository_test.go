package repository_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fzambone/event-attendance/internal/apperr"
	"github.com/fzambone/event-attendance/internal/models"
	"github.com/fzambone/event-attendance/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}, &models.Confirmation{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createEvent(t *testing.T, events *repository.EventRepository, id string) {
	t.Helper()
	if err := events.Create(&models.Event{ID: id, Name: "Event " + id, Date: "soon"}); err != nil {
		t.Fatalf("create event %s: %v", id, err)
	}
}

func TestCreateEventDuplicateSlugIsConflict(t *testing.T) {
	db := setupDB(t)
	events := repository.NewEventRepository(db)

	createEvent(t, events, "summer-party")
	err := events.Create(&models.Event{ID: "summer-party", Name: "Another", Date: "later"})

	if assert.Error(t, err) {
		assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	}

	// The first row is unchanged.
	event, err := events.GetWithConfirmations("summer-party")
	assert.NoError(t, err)
	assert.Equal(t, "Event summer-party", event.Name)
}

func TestListEventsNewestFirst(t *testing.T) {
	db := setupDB(t)
	events := repository.NewEventRepository(db)

	createEvent(t, events, "older")
	time.Sleep(10 * time.Millisecond)
	createEvent(t, events, "newer")

	list, err := events.List()
	assert.NoError(t, err)
	if assert.Len(t, list, 2) {
		assert.Equal(t, "newer", list[0].ID)
		assert.Equal(t, "older", list[1].ID)
	}
}

func TestDeleteEventCascades(t *testing.T) {
	db := setupDB(t)
	events := repository.NewEventRepository(db)
	confirmations := repository.NewConfirmationRepository(db)

	createEvent(t, events, "summer-party")
	first, err := confirmations.Create("summer-party", "Maria", 3)
	assert.NoError(t, err)
	second, err := confirmations.Create("summer-party", "João", 1)
	assert.NoError(t, err)

	assert.NoError(t, events.Delete("summer-party"))

	list, err := events.List()
	assert.NoError(t, err)
	assert.Empty(t, list)

	for _, id := range []string{first.ID.String(), second.ID.String()} {
		_, err := confirmations.Get("summer-party", id)
		if assert.Error(t, err) {
			assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
		}
	}
}

func TestDeleteEventUnknownIsNotFound(t *testing.T) {
	db := setupDB(t)
	events := repository.NewEventRepository(db)

	err := events.Delete("ghost")
	if assert.Error(t, err) {
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	}
}

func TestCreateConfirmationUnknownEventIsNotFound(t *testing.T) {
	db := setupDB(t)
	confirmations := repository.NewConfirmationRepository(db)

	_, err := confirmations.Create("ghost", "Maria", 2)
	if assert.Error(t, err) {
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	}
}

func TestConfirmationRoundTrip(t *testing.T) {
	db := setupDB(t)
	events := repository.NewEventRepository(db)
	confirmations := repository.NewConfirmationRepository(db)

	createEvent(t, events, "summer-party")
	created, err := confirmations.Create("summer-party", "Maria", 3)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.ConfirmedAt.IsZero())

	event, err := events.GetWithConfirmations("summer-party")
	assert.NoError(t, err)
	if assert.Len(t, event.Confirmations, 1) {
		assert.Equal(t, "Maria", event.Confirmations[0].Name)
		assert.Equal(t, 3, event.Confirmations[0].Guests)
	}

	updated, err := confirmations.Update("summer-party", created.ID.String(), "Maria Silva", 5)
	assert.NoError(t, err)
	assert.Equal(t, "Maria Silva", updated.Name)
	assert.Equal(t, 5, updated.Guests)
	// The edit leaves the original timestamp alone.
	assert.WithinDuration(t, created.ConfirmedAt, updated.ConfirmedAt, time.Millisecond)
}

func TestConfirmationsNewestFirst(t *testing.T) {
	db := setupDB(t)
	events := repository.NewEventRepository(db)
	confirmations := repository.NewConfirmationRepository(db)

	createEvent(t, events, "summer-party")
	_, err := confirmations.Create("summer-party", "First", 1)
	assert.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = confirmations.Create("summer-party", "Second", 1)
	assert.NoError(t, err)

	event, err := events.GetWithConfirmations("summer-party")
	assert.NoError(t, err)
	if assert.Len(t, event.Confirmations, 2) {
		assert.Equal(t, "Second", event.Confirmations[0].Name)
		assert.Equal(t, "First", event.Confirmations[1].Name)
	}
}

// A confirmation id that exists under another event must look exactly
// like a missing one.
func TestConfirmationCrossEventIsolation(t *testing.T) {
	db := setupDB(t)
	events := repository.NewEventRepository(db)
	confirmations := repository.NewConfirmationRepository(db)

	createEvent(t, events, "event-a")
	createEvent(t, events, "event-b")
	borrowed, err := confirmations.Create("event-b", "Maria", 2)
	assert.NoError(t, err)

	_, err = confirmations.Update("event-a", borrowed.ID.String(), "Intruder", 9)
	if assert.Error(t, err) {
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	}

	err = confirmations.Delete("event-a", borrowed.ID.String())
	if assert.Error(t, err) {
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	}

	// Still intact under its own event.
	kept, err := confirmations.Get("event-b", borrowed.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, "Maria", kept.Name)
	assert.Equal(t, 2, kept.Guests)
}
