package api

import (
	"context"

	"github.com/johntran041/jobly-client/internal/client/models"
)

// AuthAPI covers authentication and profile endpoints.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.Principal, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Principal, error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.Principal, error)
}

// CartAPI covers the per-user remote cart. The server cart is the source
// of truth; FetchCart returns the authoritative state.
type CartAPI interface {
	FetchCart(ctx context.Context, userID int64) ([]models.CartEntry, error)
	AddItem(ctx context.Context, userID, productID int64, quantity int) error
	UpdateItem(ctx context.Context, userID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// CatalogAPI covers read-only product lookups.
type CatalogAPI interface {
	Products(ctx context.Context, category string, limit, skip int) (*models.ProductPage, error)
	Product(ctx context.Context, id int64) (*models.Product, error)
	SearchProducts(ctx context.Context, query string, limit int) (*models.ProductPage, error)
	Categories(ctx context.Context) ([]string, error)
}

// JobsAPI covers the job board: postings, applications and candidate search.
type JobsAPI interface {
	SearchJobs(ctx context.Context, params models.JobSearchParams) (*models.JobPage, error)
	Job(ctx context.Context, id int64) (*models.JobPosting, error)
	CreateJob(ctx context.Context, req models.CreateJobRequest) (*models.JobPosting, error)
	UpdateJob(ctx context.Context, id int64, req models.UpdateJobRequest) (*models.JobPosting, error)
	DeleteJob(ctx context.Context, id int64) error
	MyJobs(ctx context.Context) ([]models.JobPosting, error)

	Apply(ctx context.Context, req models.CreateApplicationRequest) (*models.Application, error)
	MyApplications(ctx context.Context) ([]models.Application, error)
	JobApplications(ctx context.Context, jobID int64) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)

	SearchCandidates(ctx context.Context, params models.CandidateSearchParams) ([]models.Candidate, error)
}
