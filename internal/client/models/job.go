package models

// JobPosting is a job-board posting owned by a recruiter.
type JobPosting struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Salary       string `json:"salary,omitempty"`
	Location     string `json:"location"`
	Industry     string `json:"industry"`
	JobType      string `json:"jobType"`
	RecruiterID  int64  `json:"recruiterId"`

	Recruiter *struct {
		ID          int64  `json:"id"`
		CompanyName string `json:"companyName"`
		Email       string `json:"email"`
	} `json:"recruiter,omitempty"`

	IsActive  bool   `json:"isActive"`
	Views     int    `json:"views"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// JobPage is one page of a job listing or search result.
type JobPage struct {
	Jobs  []JobPosting `json:"jobs"`
	Total int          `json:"total"`
	Skip  int          `json:"skip"`
	Limit int          `json:"limit"`
}

// ApplicationStatus tracks an application through the hiring pipeline.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "PENDING"
	StatusReviewed  ApplicationStatus = "REVIEWED"
	StatusInterview ApplicationStatus = "INTERVIEW"
	StatusAccepted  ApplicationStatus = "ACCEPTED"
	StatusRejected  ApplicationStatus = "REJECTED"
)

// ValidStatus reports whether s is one of the known pipeline states.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusInterview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application links a candidate to a job posting.
type Application struct {
	ID           int64             `json:"id"`
	JobPostingID int64             `json:"jobPostingId"`
	CandidateID  int64             `json:"candidateId"`
	Status       ApplicationStatus `json:"status"`
	CoverLetter  string            `json:"coverLetter,omitempty"`

	JobPosting *JobPosting `json:"jobPosting,omitempty"`
	Candidate  *Candidate  `json:"candidate,omitempty"`

	AppliedAt string `json:"appliedAt"`
	UpdatedAt string `json:"updatedAt"`
}

// JobSearchParams filter a job listing request. Zero values are omitted
// from the query string.
type JobSearchParams struct {
	Keyword   string
	Location  string
	Industry  string
	JobType   string
	MinSalary string
	MaxSalary string
	Page      int
	Limit     int
}

// CandidateSearchParams filter a recruiter's candidate search.
type CandidateSearchParams struct {
	Keyword    string
	Skills     string
	Experience string
	Location   string
	Page       int
	Limit      int
}
