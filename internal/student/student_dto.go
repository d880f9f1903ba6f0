package student

// CGPA is a pointer so that a legitimate 0.0 survives the required check.
type RegisterStudentRequest struct {
	Name  string   `json:"name" binding:"required"`
	Email string   `json:"email" binding:"required"`
	CGPA  *float64 `json:"cgpa" binding:"required"`
}

type StudentResponse struct {
	StudentID uint    `json:"student_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	CGPA      float64 `json:"cgpa"`
}
