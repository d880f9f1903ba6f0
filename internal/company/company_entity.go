package company

import "time"

type Company struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_company_email"`
	Industry    string    `gorm:"type:varchar(100);not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

func (Company) TableName() string {
	return "companies"
}
