package notice

import (
	"time"

	"github.com/civichub/community-go/internal/domain/form"
)

// Notice is a piece of admin-curated content that may carry one form. The
// invariant HasForm=false implies no definition and no submissions; the
// service restores it whenever a form is detached.
type Notice struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Title       string            `gorm:"size:255;not null" json:"title"`
	Type        string            `gorm:"size:50" json:"type"`
	Description string            `gorm:"type:text" json:"description"`
	Published   bool              `gorm:"default:true" json:"published"`
	HasForm     bool              `gorm:"default:false" json:"has_form"`
	Form        *form.Definition  `gorm:"foreignKey:NoticeID" json:"form,omitempty"`
	Submissions []form.Submission `gorm:"foreignKey:NoticeID" json:"submissions,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
