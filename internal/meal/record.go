// Package meal holds the finished meal record and hands it to whatever
// consumes it.
package meal

import (
	"time"

	"github.com/google/uuid"

	"github.com/jask/foodtracker/internal/photo"
)

// Record is a snapshot of the meal form taken when the user saves.
// Treat it as read-only once built.
type Record struct {
	ID        string
	Name      string
	Photo     *photo.Photo // nil when no photo was picked
	Rating    int
	CreatedAt time.Time
}

func NewRecord(name string, p *photo.Photo, rating int) Record {
	return Record{
		ID:        uuid.NewString(),
		Name:      name,
		Photo:     p,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
}

func (r Record) HasPhoto() bool {
	return r.Photo != nil
}
