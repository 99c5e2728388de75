package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/johntran041/jobly-client/internal/client/models"
)

// SearchJobs lists postings matching the given filters.
func (c *HTTPClient) SearchJobs(ctx context.Context, params models.JobSearchParams) (*models.JobPage, error) {
	q := url.Values{}
	setIf(q, "keyword", params.Keyword)
	setIf(q, "location", params.Location)
	setIf(q, "industry", params.Industry)
	setIf(q, "jobType", params.JobType)
	setIf(q, "minSalary", params.MinSalary)
	setIf(q, "maxSalary", params.MaxSalary)
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	var out models.JobPage
	if err := c.do(ctx, http.MethodGet, "/jobs", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Job fetches a single posting; the backend counts the view.
func (c *HTTPClient) Job(ctx context.Context, id int64) (*models.JobPosting, error) {
	var out struct {
		Job models.JobPosting `json:"job"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// CreateJob posts a new opening (recruiter only).
func (c *HTTPClient) CreateJob(ctx context.Context, req models.CreateJobRequest) (*models.JobPosting, error) {
	var out struct {
		Job models.JobPosting `json:"job"`
	}
	if err := c.do(ctx, http.MethodPost, "/jobs", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// UpdateJob partially updates a posting owned by the caller.
func (c *HTTPClient) UpdateJob(ctx context.Context, id int64, req models.UpdateJobRequest) (*models.JobPosting, error) {
	var out struct {
		Job models.JobPosting `json:"job"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/jobs/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// DeleteJob removes a posting owned by the caller.
func (c *HTTPClient) DeleteJob(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), nil, nil, nil)
}

// MyJobs lists the authenticated recruiter's postings.
func (c *HTTPClient) MyJobs(ctx context.Context) ([]models.JobPosting, error) {
	var out struct {
		Jobs []models.JobPosting `json:"jobs"`
	}
	if err := c.do(ctx, http.MethodGet, "/jobs/mine", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

// Apply submits an application for the authenticated candidate.
func (c *HTTPClient) Apply(ctx context.Context, req models.CreateApplicationRequest) (*models.Application, error) {
	var out struct {
		Application models.Application `json:"application"`
	}
	if err := c.do(ctx, http.MethodPost, "/applications", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Application, nil
}

// MyApplications lists the authenticated candidate's applications.
func (c *HTTPClient) MyApplications(ctx context.Context) ([]models.Application, error) {
	var out struct {
		Applications []models.Application `json:"applications"`
	}
	if err := c.do(ctx, http.MethodGet, "/applications/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Applications, nil
}

// JobApplications lists applications received for one posting (recruiter only).
func (c *HTTPClient) JobApplications(ctx context.Context, jobID int64) ([]models.Application, error) {
	var out struct {
		Applications []models.Application `json:"applications"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d/applications", jobID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Applications, nil
}

// UpdateApplicationStatus moves an application through the pipeline.
func (c *HTTPClient) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	body := struct {
		Status models.ApplicationStatus `json:"status"`
	}{Status: status}
	var out struct {
		Application models.Application `json:"application"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/applications/%d/status", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Application, nil
}

// SearchCandidates runs a recruiter's candidate search.
func (c *HTTPClient) SearchCandidates(ctx context.Context, params models.CandidateSearchParams) ([]models.Candidate, error) {
	q := url.Values{}
	setIf(q, "keyword", params.Keyword)
	setIf(q, "skills", params.Skills)
	setIf(q, "experience", params.Experience)
	setIf(q, "location", params.Location)
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	var out struct {
		Candidates []models.Candidate `json:"candidates"`
	}
	if err := c.do(ctx, http.MethodGet, "/candidates/search", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Candidates, nil
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
