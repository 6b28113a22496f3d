package blog

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	Title     string                      `gorm:"size:255;not null" json:"title"`
	Author    string                      `gorm:"size:100" json:"author"`
	Content   string                      `gorm:"type:text" json:"content"`
	CoverKey  string                      `gorm:"size:255" json:"cover_key"` // object key in the uploads bucket
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	Published bool                        `gorm:"default:false" json:"published"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}
