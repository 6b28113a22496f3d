package user

import "time"

// Role values line up with the keys of the permission table; an
// unrecognized role simply gets the whole admin surface hidden.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleEditor    = "editor"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100" json:"email"`
	FullName  *string   `gorm:"size:100" json:"full_name"`
	Role      string    `gorm:"size:20;default:'member';not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
