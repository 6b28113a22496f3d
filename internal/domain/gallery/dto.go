package gallery

import "time"

type CreateEventInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	EventDate   *time.Time `json:"event_date"`
	ImageKeys   []string   `json:"image_keys"`
}

type UpdateEventInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EventDate   *time.Time `json:"event_date"`
	ImageKeys   *[]string  `json:"image_keys"`
}
