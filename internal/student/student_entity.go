package student

import "time"

type Student struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_student_email"`
	CGPA      float64   `gorm:"type:numeric(4,2);not null"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (Student) TableName() string {
	return "students"
}
