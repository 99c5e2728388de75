package models

// Request payloads carry validator tags; user input is validated against
// them before any network call is made.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required,min=3"`
	Role     Role   `json:"role" validate:"required,oneof=CANDIDATE RECRUITER"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`

	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`

	CompanyName string `json:"companyName,omitempty"`
	CompanyInfo string `json:"companyInfo,omitempty"`
}

// ProfileUpdate is a partial update; empty fields are left untouched
// server-side.
type ProfileUpdate struct {
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`

	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
	Resume     string `json:"resume,omitempty" validate:"omitempty,url"`

	CompanyName string `json:"companyName,omitempty"`
	CompanyInfo string `json:"companyInfo,omitempty"`
}

type CreateJobRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
	Salary       string `json:"salary,omitempty"`
	Location     string `json:"location" validate:"required"`
	Industry     string `json:"industry" validate:"required"`
	JobType      string `json:"jobType" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
}

type UpdateJobRequest struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Requirements string `json:"requirements,omitempty"`
	Salary       string `json:"salary,omitempty"`
	Location     string `json:"location,omitempty"`
	Industry     string `json:"industry,omitempty"`
	JobType      string `json:"jobType,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	IsActive     *bool  `json:"isActive,omitempty"`
}

type CreateApplicationRequest struct {
	JobPostingID int64  `json:"jobPostingId" validate:"required,gt=0"`
	CoverLetter  string `json:"coverLetter,omitempty"`
}
