// Package models defines the data types exchanged with the Jobly backend.
package models

// Role classifies an authenticated user.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// Principal is the authenticated user record held by the session guard.
// The token is opaque to the client and attached as-is to outbound requests.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`

	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`

	// Candidate profile.
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
	Resume     string `json:"resume,omitempty"`

	// Recruiter profile.
	CompanyName string `json:"companyName,omitempty"`
	CompanyInfo string `json:"companyInfo,omitempty"`

	Token string `json:"token,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (p *Principal) IsCandidate() bool { return p != nil && p.Role == RoleCandidate }
func (p *Principal) IsRecruiter() bool { return p != nil && p.Role == RoleRecruiter }
func (p *Principal) IsAdmin() bool     { return p != nil && p.Role == RoleAdmin }

// Candidate is the profile subset recruiters see in search results and
// attached to applications.
type Candidate struct {
	ID         int64  `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
	Resume     string `json:"resume,omitempty"`
}
