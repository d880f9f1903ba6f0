package job

type PostJobRequest struct {
	CompanyID     uint   `json:"company_id" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	SalaryPackage string `json:"salary_package" binding:"required"`
}

type JobResponse struct {
	JobID         uint   `json:"job_id"`
	CompanyID     uint   `json:"company_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SalaryPackage string `json:"salary_package"`
	PostingDate   string `json:"posting_date"`
}

// JobOptionResponse is the slim projection behind the portal's job dropdown.
type JobOptionResponse struct {
	JobID uint   `json:"job_id"`
	Title string `json:"title"`
}
