package models

import "time"

type Dojo struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	User        *User     `gorm:"foreignKey:UserID"`
	Local       string    `gorm:"not null"`
	Day         time.Time `gorm:"type:date;not null;index"`
	Address     string    `gorm:"not null;default:''"`
	City        string    `gorm:"not null;default:''"`
	LimitPeople *int
	Info        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
