package job

import "time"

type JobPosting struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	CompanyID     uint      `gorm:"not null;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text;not null"`
	SalaryPackage string    `gorm:"type:varchar(100);not null"`
	PostingDate   time.Time `gorm:"type:date;not null"`
	CreatedAt     time.Time `gorm:"not null;default:now()"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
