package company

type RegisterCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Industry    string  `json:"industry" binding:"required"`
	Description *string `json:"description"`
}

type CompanyResponse struct {
	CompanyID   uint    `json:"company_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Industry    string  `json:"industry"`
	Description *string `json:"description"`
}
