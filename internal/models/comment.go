package models

import "time"

// Comment represents a reader comment on a post. Comments are created active
// and can be suppressed by moderation; only active comments are shown on the
// post detail page.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"size:80;not null" json:"name"`
	Email     string    `gorm:"size:254;not null" json:"email"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
