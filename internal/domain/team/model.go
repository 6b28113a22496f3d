package team

import "time"

// Member is one entry of the public team roster. DisplayOrder controls the
// roster sequence; lower comes first.
type Member struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Position     string    `gorm:"size:100" json:"position"`
	Bio          string    `gorm:"type:text" json:"bio"`
	PhotoKey     string    `gorm:"size:255" json:"photo_key"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
