package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/johntran041/jobly-client/internal/client/forms"
	"github.com/johntran041/jobly-client/internal/client/models"
)

// Jobs lists postings, optionally filtered by a free-text keyword.
func (a *App) Jobs(ctx context.Context, args []string) error {
	params := models.JobSearchParams{Keyword: strings.Join(args, " "), Limit: 20}
	page, err := a.jobs.SearchJobs(ctx, params)
	if err != nil {
		a.banner(err)
		return nil
	}
	if len(page.Jobs) == 0 {
		fmt.Fprintln(a.out, "No jobs found.")
		return nil
	}
	fmt.Fprintf(a.out, "%d jobs found\n", page.Total)
	for _, j := range page.Jobs {
		company := ""
		if j.Recruiter != nil {
			company = " @ " + j.Recruiter.CompanyName
		}
		fmt.Fprintf(a.out, "  #%d %s%s — %s, %s\n", j.ID, j.Title, company, j.Location, j.JobType)
	}
	return nil
}

// Job shows one posting in full.
func (a *App) Job(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "Usage: job <id>")
	if !ok {
		return nil
	}
	j, err := a.jobs.Job(ctx, id)
	if err != nil {
		a.banner(err)
		return nil
	}
	fmt.Fprintf(a.out, "#%d %s\n", j.ID, j.Title)
	fmt.Fprintf(a.out, "  location: %s  type: %s  industry: %s\n", j.Location, j.JobType, j.Industry)
	if j.Salary != "" {
		fmt.Fprintf(a.out, "  salary:   %s\n", j.Salary)
	}
	if j.Recruiter != nil {
		fmt.Fprintf(a.out, "  company:  %s <%s>\n", j.Recruiter.CompanyName, j.Recruiter.Email)
	}
	fmt.Fprintf(a.out, "\n%s\n\nRequirements:\n%s\n", j.Description, j.Requirements)
	return nil
}

// Apply submits an application for the given posting (candidate only),
// prompting for an optional cover letter.
func (a *App) Apply(ctx context.Context, args []string) error {
	if !a.requireRole(models.RoleCandidate) {
		return nil
	}
	id, ok := a.parseID(args, "Usage: apply <jobId>")
	if !ok {
		return nil
	}

	letter, err := getMultiline(a.reader, "Cover letter (optional)", a.out)
	if err != nil {
		return err
	}

	req := models.CreateApplicationRequest{JobPostingID: id, CoverLetter: letter}
	if err := forms.Validate(req); err != nil {
		var fieldErrs forms.FieldErrors
		if errors.As(err, &fieldErrs) {
			a.printFieldErrors(fieldErrs)
			return nil
		}
		return err
	}

	app, err := a.jobs.Apply(ctx, req)
	if err != nil {
		a.banner(err)
		return nil
	}
	fmt.Fprintf(a.out, "Application #%d submitted (status %s).\n", app.ID, app.Status)
	return nil
}

// MyApplications lists the candidate's applications with their pipeline
// status.
func (a *App) MyApplications(ctx context.Context) error {
	if !a.requireRole(models.RoleCandidate) {
		return nil
	}
	apps, err := a.jobs.MyApplications(ctx)
	if err != nil {
		a.banner(err)
		return nil
	}
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "You have not applied to any jobs yet.")
		return nil
	}
	for _, app := range apps {
		title := fmt.Sprintf("job #%d", app.JobPostingID)
		if app.JobPosting != nil {
			title = app.JobPosting.Title
		}
		fmt.Fprintf(a.out, "  #%d %s — %s (applied %s)\n", app.ID, title, app.Status, app.AppliedAt)
	}
	return nil
}

// MyJobs lists the recruiter's own postings.
func (a *App) MyJobs(ctx context.Context) error {
	if !a.requireRole(models.RoleRecruiter) {
		return nil
	}
	jobs, err := a.jobs.MyJobs(ctx)
	if err != nil {
		a.banner(err)
		return nil
	}
	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "You have no postings. Use 'postjob' to create one.")
		return nil
	}
	for _, j := range jobs {
		state := "active"
		if !j.IsActive {
			state = "inactive"
		}
		fmt.Fprintf(a.out, "  #%d %s — %s, %d views\n", j.ID, j.Title, state, j.Views)
	}
	return nil
}

// PostJob walks a recruiter through creating a posting.
func (a *App) PostJob(ctx context.Context) error {
	if !a.requireRole(models.RoleRecruiter) {
		return nil
	}

	req := models.CreateJobRequest{}
	var err error
	if req.Title, err = getSimpleText(a.reader, "Job title", a.out); err != nil {
		return err
	}
	if req.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if req.Requirements, err = getMultiline(a.reader, "Requirements", a.out); err != nil {
		return err
	}
	req.Salary, _ = getSimpleText(a.reader, "Salary (optional)", a.out)
	if req.Location, err = getSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}
	if req.Industry, err = getSimpleText(a.reader, "Industry", a.out); err != nil {
		return err
	}
	if req.JobType, err = getSimpleText(a.reader, "Job type (FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP)", a.out); err != nil {
		return err
	}

	if err := forms.Validate(req); err != nil {
		var fieldErrs forms.FieldErrors
		if errors.As(err, &fieldErrs) {
			a.printFieldErrors(fieldErrs)
			return nil
		}
		return err
	}

	j, err := a.jobs.CreateJob(ctx, req)
	if err != nil {
		a.banner(err)
		return nil
	}
	fmt.Fprintf(a.out, "Posted job #%d: %s\n", j.ID, j.Title)
	return nil
}

// Applications lists applications received for one of the recruiter's
// postings.
func (a *App) Applications(ctx context.Context, args []string) error {
	if !a.requireRole(models.RoleRecruiter) {
		return nil
	}
	id, ok := a.parseID(args, "Usage: applications <jobId>")
	if !ok {
		return nil
	}
	apps, err := a.jobs.JobApplications(ctx, id)
	if err != nil {
		a.banner(err)
		return nil
	}
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications for this posting yet.")
		return nil
	}
	for _, app := range apps {
		name := fmt.Sprintf("candidate #%d", app.CandidateID)
		if app.Candidate != nil {
			name = app.Candidate.FullName
		}
		fmt.Fprintf(a.out, "  #%d %s — %s\n", app.ID, name, app.Status)
	}
	return nil
}

// SetStatus moves an application through the pipeline (recruiter only).
func (a *App) SetStatus(ctx context.Context, args []string) error {
	if !a.requireRole(models.RoleRecruiter) {
		return nil
	}
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: status <applicationId> <PENDING|REVIEWED|INTERVIEW|ACCEPTED|REJECTED>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Application id must be a number.")
		return nil
	}
	status := models.ApplicationStatus(strings.ToUpper(args[1]))
	if !models.ValidStatus(status) {
		fmt.Fprintf(a.out, "Unknown status %q.\n", args[1])
		return nil
	}

	app, err := a.jobs.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		a.banner(err)
		return nil
	}
	fmt.Fprintf(a.out, "Application #%d is now %s.\n", app.ID, app.Status)
	return nil
}

// Candidates runs a recruiter's candidate search.
func (a *App) Candidates(ctx context.Context, args []string) error {
	if !a.requireRole(models.RoleRecruiter) {
		return nil
	}
	params := models.CandidateSearchParams{Keyword: strings.Join(args, " "), Limit: 20}
	candidates, err := a.jobs.SearchCandidates(ctx, params)
	if err != nil {
		a.banner(err)
		return nil
	}
	if len(candidates) == 0 {
		fmt.Fprintln(a.out, "No candidates found.")
		return nil
	}
	for _, c := range candidates {
		fmt.Fprintf(a.out, "  #%d %s <%s> — %s\n", c.ID, c.FullName, c.Email, c.Skills)
	}
	return nil
}

// parseID pulls a positive integer id out of args, printing usage on
// malformed input.
func (a *App) parseID(args []string, usage string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	return id, true
}
