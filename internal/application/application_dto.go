package application

type CreateApplicationRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
	JobID     uint `json:"job_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationResponse struct {
	ApplicationID   uint   `json:"application_id"`
	StudentID       uint   `json:"student_id"`
	JobID           uint   `json:"job_id"`
	Status          string `json:"status"`
	ApplicationDate string `json:"application_date"`
}

// ApplicationDetailResponse is the recruiter triage read model: every native
// application field plus the two denormalized join columns.
type ApplicationDetailResponse struct {
	ApplicationID   uint   `json:"application_id"`
	StudentID       uint   `json:"student_id"`
	JobID           uint   `json:"job_id"`
	Status          string `json:"status"`
	ApplicationDate string `json:"application_date"`
	StudentName     string `json:"student_name"`
	JobTitle        string `json:"job_title"`
}
