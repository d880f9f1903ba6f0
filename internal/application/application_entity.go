package application

import "time"

type Application struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	StudentID       uint      `gorm:"not null;index"`
	JobID           uint      `gorm:"not null;index"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApplicationDate time.Time `gorm:"type:date;not null"`
	CreatedAt       time.Time `gorm:"not null;default:now()"`
	UpdatedAt       time.Time `gorm:"not null;default:now()"`
}

func (Application) TableName() string {
	return "applications"
}
