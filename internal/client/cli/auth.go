package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/johntran041/jobly-client/internal/client/forms"
	"github.com/johntran041/jobly-client/internal/client/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to the interactive input helpers and can
// be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for credentials, validates them locally and authenticates
// through the session guard. Field problems are printed inline; backend
// failures as a banner.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	req := models.LoginRequest{Email: email, Password: password}
	if err := forms.Validate(req); err != nil {
		var fieldErrs forms.FieldErrors
		if errors.As(err, &fieldErrs) {
			a.printFieldErrors(fieldErrs)
			return nil
		}
		return err
	}

	p, err := a.session.Login(ctx, req)
	if err != nil {
		a.banner(err)
		return nil
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s).\n", p.Username, p.Role)
	return nil
}

// Register walks through account creation, branching on the chosen role
// for the candidate/recruiter profile fields.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role (CANDIDATE or RECRUITER)", a.out)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{
		Email:    email,
		Password: password,
		Username: username,
		Role:     models.Role(role),
	}

	switch req.Role {
	case models.RoleCandidate:
		req.FullName, _ = getSimpleText(a.reader, "Full name (optional)", a.out)
		req.Skills, _ = getSimpleText(a.reader, "Skills (optional)", a.out)
		req.Experience, _ = getSimpleText(a.reader, "Experience (optional)", a.out)
		req.Education, _ = getSimpleText(a.reader, "Education (optional)", a.out)
	case models.RoleRecruiter:
		req.CompanyName, _ = getSimpleText(a.reader, "Company name", a.out)
		req.CompanyInfo, _ = getSimpleText(a.reader, "Company info (optional)", a.out)
	}

	if err := forms.Validate(req); err != nil {
		var fieldErrs forms.FieldErrors
		if errors.As(err, &fieldErrs) {
			a.printFieldErrors(fieldErrs)
			return nil
		}
		return err
	}

	p, err := a.session.Register(ctx, req)
	if err != nil {
		a.banner(err)
		return nil
	}
	fmt.Fprintf(a.out, "Welcome, %s! You are registered as %s.\n", p.Username, p.Role)
	return nil
}

// Logout ends the session immediately.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the active principal and the current idle deadline.
func (a *App) WhoAmI(ctx context.Context) error {
	p := a.session.Principal()
	if p == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", p.Username, p.Email, p.Role)
	fmt.Fprintf(a.out, "Session expires at %s unless you stay active.\n", a.session.Expiry().Format("15:04:05"))
	return nil
}

// Profile shows the profile, or with "update" walks through a partial
// profile edit where empty answers keep the current values.
func (a *App) Profile(ctx context.Context, args []string) error {
	p := a.session.Principal()
	if p == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	if len(args) == 0 {
		a.printProfile(p)
		return nil
	}
	if args[0] != "update" {
		fmt.Fprintln(a.out, "Usage: profile [update]")
		return nil
	}

	fmt.Fprintln(a.out, "Leave a field empty to keep its current value.")
	req := models.ProfileUpdate{}
	req.FullName, _ = getSimpleText(a.reader, fmt.Sprintf("Full name [%s]", p.FullName), a.out)
	req.Phone, _ = getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", p.Phone), a.out)

	switch p.Role {
	case models.RoleCandidate:
		req.Skills, _ = getSimpleText(a.reader, fmt.Sprintf("Skills [%s]", p.Skills), a.out)
		req.Experience, _ = getSimpleText(a.reader, fmt.Sprintf("Experience [%s]", p.Experience), a.out)
		req.Education, _ = getSimpleText(a.reader, fmt.Sprintf("Education [%s]", p.Education), a.out)
		req.Resume, _ = getSimpleText(a.reader, fmt.Sprintf("Resume URL [%s]", p.Resume), a.out)
	case models.RoleRecruiter:
		req.CompanyName, _ = getSimpleText(a.reader, fmt.Sprintf("Company name [%s]", p.CompanyName), a.out)
		req.CompanyInfo, _ = getSimpleText(a.reader, fmt.Sprintf("Company info [%s]", p.CompanyInfo), a.out)
	}

	if err := forms.Validate(req); err != nil {
		var fieldErrs forms.FieldErrors
		if errors.As(err, &fieldErrs) {
			a.printFieldErrors(fieldErrs)
			return nil
		}
		return err
	}

	updated, err := a.session.UpdateProfile(ctx, req)
	if err != nil {
		a.banner(err)
		return nil
	}
	fmt.Fprintln(a.out, "Profile updated.")
	a.printProfile(updated)
	return nil
}

func (a *App) printProfile(p *models.Principal) {
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", p.Username, p.Email, p.Role)
	if p.FullName != "" {
		fmt.Fprintf(a.out, "  name:       %s\n", p.FullName)
	}
	if p.Phone != "" {
		fmt.Fprintf(a.out, "  phone:      %s\n", p.Phone)
	}
	switch p.Role {
	case models.RoleCandidate:
		if p.Skills != "" {
			fmt.Fprintf(a.out, "  skills:     %s\n", p.Skills)
		}
		if p.Experience != "" {
			fmt.Fprintf(a.out, "  experience: %s\n", p.Experience)
		}
		if p.Education != "" {
			fmt.Fprintf(a.out, "  education:  %s\n", p.Education)
		}
		if p.Resume != "" {
			fmt.Fprintf(a.out, "  resume:     %s\n", p.Resume)
		}
	case models.RoleRecruiter:
		if p.CompanyName != "" {
			fmt.Fprintf(a.out, "  company:    %s\n", p.CompanyName)
		}
		if p.CompanyInfo != "" {
			fmt.Fprintf(a.out, "  about:      %s\n", p.CompanyInfo)
		}
	}
}
