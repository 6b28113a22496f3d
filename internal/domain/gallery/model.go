package gallery

import (
	"time"

	"gorm.io/datatypes"
)

// Event groups the photos of one community happening. ImageKeys reference
// objects in the uploads bucket.
type Event struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	EventDate   *time.Time                  `json:"event_date"`
	ImageKeys   datatypes.JSONSlice[string] `json:"image_keys"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
