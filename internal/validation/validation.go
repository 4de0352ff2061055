// Package validation holds the pure payload validators. Every function is
// synchronous, side-effect free, and stops at the first failing rule; the
// returned error names the offending field and, for enumerated fields, lists
// the allowed values.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool { return emailRe.MatchString(email) }

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func maxLen(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%s must be between 1 and %d characters", field, max)
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	for _, v := range allowed {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}

// ValidateUseCase checks a creation payload.
func ValidateUseCase(in *models.CreateUseCaseInput) error {
	if err := required("title", in.Title); err != nil {
		return err
	}
	if err := maxLen("title", in.Title, 200); err != nil {
		return err
	}
	if err := required("short_description", in.ShortDescription); err != nil {
		return err
	}
	if err := maxLen("short_description", in.ShortDescription, 300); err != nil {
		return err
	}
	if err := required("full_description", in.FullDescription); err != nil {
		return err
	}
	if err := required("benefits", in.Benefits); err != nil {
		return err
	}
	if err := oneOf("department", in.Department, models.Departments); err != nil {
		return err
	}
	if err := oneOf("status", in.Status, models.Statuses); err != nil {
		return err
	}
	if in.OwnerEmail != "" && !IsValidEmail(in.OwnerEmail) {
		return errors.New("owner_email has invalid format")
	}
	return nil
}

// ValidateUseCaseUpdate applies the creation rules, but only to fields that
// are present in the patch.
func ValidateUseCaseUpdate(in *models.UpdateUseCaseInput) error {
	if in.Title != nil {
		if err := required("title", *in.Title); err != nil {
			return err
		}
		if err := maxLen("title", *in.Title, 200); err != nil {
			return err
		}
	}
	if in.ShortDescription != nil {
		if err := required("short_description", *in.ShortDescription); err != nil {
			return err
		}
		if err := maxLen("short_description", *in.ShortDescription, 300); err != nil {
			return err
		}
	}
	if in.FullDescription != nil {
		if err := required("full_description", *in.FullDescription); err != nil {
			return err
		}
	}
	if in.Benefits != nil {
		if err := required("benefits", *in.Benefits); err != nil {
			return err
		}
	}
	if in.Department != nil {
		if err := oneOf("department", *in.Department, models.Departments); err != nil {
			return err
		}
	}
	if in.Status != nil {
		if err := oneOf("status", *in.Status, models.Statuses); err != nil {
			return err
		}
	}
	if in.OwnerEmail != nil && *in.OwnerEmail != "" && !IsValidEmail(*in.OwnerEmail) {
		return errors.New("owner_email has invalid format")
	}
	return nil
}

// ValidateUser checks an admin-driven account creation payload.
// The self-service register path additionally requires 8+ character passwords
// (enforced by the auth service).
func ValidateUser(in *models.CreateUserInput) error {
	if in.Email == "" || !IsValidEmail(in.Email) {
		return errors.New("email is required and must be valid")
	}
	if len(in.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if err := required("name", in.Name); err != nil {
		return err
	}
	if err := required("role", in.Role); err != nil {
		return err
	}
	return oneOf("role", in.Role, models.Roles)
}

// ValidateUserUpdate checks an account patch; fields are optional.
func ValidateUserUpdate(in *models.UpdateUserInput) error {
	if in.Email != nil && !IsValidEmail(*in.Email) {
		return errors.New("email has invalid format")
	}
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return err
		}
	}
	if in.Role != nil {
		if err := oneOf("role", *in.Role, models.Roles); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLogin checks that both credentials were supplied.
func ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return errors.New("Email and password are required")
	}
	return nil
}
