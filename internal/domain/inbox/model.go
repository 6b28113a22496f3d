// Package inbox holds the three visitor-initiated message streams the admin
// surface reviews: contact messages, hiring applications and site feedback.
package inbox

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Reviewed  bool      `gorm:"default:false" json:"reviewed"`
	CreatedAt time.Time `json:"created_at"`
}

type HiringApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Position  string    `gorm:"size:100" json:"position"`
	Note      string    `gorm:"type:text" json:"note"`
	ResumeKey string    `gorm:"size:255" json:"resume_key"` // object key in the uploads bucket
	Reviewed  bool      `gorm:"default:false" json:"reviewed"`
	CreatedAt time.Time `json:"created_at"`
}

type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:100" json:"email"`
	Rating    int       `gorm:"default:0" json:"rating"` // 1..5, 0 = not given
	Comment   string    `gorm:"type:text" json:"comment"`
	Reviewed  bool      `gorm:"default:false" json:"reviewed"`
	CreatedAt time.Time `json:"created_at"`
}
