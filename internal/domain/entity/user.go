package entity

import "time"

// User represents a staff account that operates the workstation.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
