package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

func validCreateInput() *models.CreateUseCaseInput {
	return &models.CreateUseCaseInput{
		Title:            "Invoice matching",
		ShortDescription: "Match invoices to POs automatically",
		FullDescription:  "Full text",
		Benefits:         "Less manual work",
		Department:       "Procurement",
		Status:           "PoC",
	}
}

func TestValidateUseCase(t *testing.T) {
	require.NoError(t, ValidateUseCase(validCreateInput()))

	tests := []struct {
		name    string
		mutate  func(in *models.CreateUseCaseInput)
		wantMsg string
	}{
		{"missing title", func(in *models.CreateUseCaseInput) { in.Title = "" }, "title is required"},
		{"whitespace title", func(in *models.CreateUseCaseInput) { in.Title = "   " }, "title is required"},
		{"title too long", func(in *models.CreateUseCaseInput) { in.Title = strings.Repeat("x", 201) }, "title must be between 1 and 200 characters"},
		{"missing short description", func(in *models.CreateUseCaseInput) { in.ShortDescription = "" }, "short_description is required"},
		{"short description too long", func(in *models.CreateUseCaseInput) { in.ShortDescription = strings.Repeat("x", 301) }, "short_description must be between 1 and 300 characters"},
		{"missing full description", func(in *models.CreateUseCaseInput) { in.FullDescription = "" }, "full_description is required"},
		{"missing benefits", func(in *models.CreateUseCaseInput) { in.Benefits = "" }, "benefits is required"},
		{"unknown department", func(in *models.CreateUseCaseInput) { in.Department = "Finance" }, "department must be one of: Marketing, R&D, Procurement, IT, HR, Operations"},
		{"unknown status", func(in *models.CreateUseCaseInput) { in.Status = "Done" }, "status must be one of: Ideation, Pre-Evaluation, Evaluation, PoC, MVP, Live, Archived"},
		{"bad owner email", func(in *models.CreateUseCaseInput) { in.OwnerEmail = "not-an-email" }, "owner_email has invalid format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(in)
			err := ValidateUseCase(in)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateUseCase_FirstFailureWins(t *testing.T) {
	in := validCreateInput()
	in.Title = ""
	in.Department = "Finance"
	err := ValidateUseCase(in)
	require.Error(t, err)
	assert.Equal(t, "title is required", err.Error())
}

func TestValidateUseCaseUpdate(t *testing.T) {
	str := func(s string) *string { return &s }

	// Empty patch passes validation; the service rejects it earlier.
	require.NoError(t, ValidateUseCaseUpdate(&models.UpdateUseCaseInput{}))

	require.NoError(t, ValidateUseCaseUpdate(&models.UpdateUseCaseInput{
		Title:  str("New title"),
		Status: str("Live"),
	}))

	err := ValidateUseCaseUpdate(&models.UpdateUseCaseInput{Title: str("")})
	require.Error(t, err)
	assert.Equal(t, "title is required", err.Error())

	err = ValidateUseCaseUpdate(&models.UpdateUseCaseInput{Department: str("Finance")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "department must be one of")

	err = ValidateUseCaseUpdate(&models.UpdateUseCaseInput{Status: str("Done")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status must be one of")

	err = ValidateUseCaseUpdate(&models.UpdateUseCaseInput{OwnerEmail: str("nope")})
	require.Error(t, err)
	assert.Equal(t, "owner_email has invalid format", err.Error())
}

func TestValidateUser(t *testing.T) {
	valid := &models.CreateUserInput{Email: "a@b.co", Name: "A", Password: "secret1", Role: "viewer"}
	require.NoError(t, ValidateUser(valid))

	tests := []struct {
		name   string
		in     models.CreateUserInput
		substr string
	}{
		{"missing email", models.CreateUserInput{Name: "A", Password: "secret1", Role: "viewer"}, "email"},
		{"bad email", models.CreateUserInput{Email: "nope", Name: "A", Password: "secret1", Role: "viewer"}, "email"},
		{"short password", models.CreateUserInput{Email: "a@b.co", Name: "A", Password: "12345", Role: "viewer"}, "password must be at least 6 characters"},
		{"missing name", models.CreateUserInput{Email: "a@b.co", Password: "secret1", Role: "viewer"}, "name is required"},
		{"missing role", models.CreateUserInput{Email: "a@b.co", Name: "A", Password: "secret1"}, "role is required"},
		{"unknown role", models.CreateUserInput{Email: "a@b.co", Name: "A", Password: "secret1", Role: "root"}, "role must be one of: admin, viewer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(&tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.substr)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, ValidateLogin("a@b.co", "pw"))
	require.Error(t, ValidateLogin("", "pw"))
	require.Error(t, ValidateLogin("a@b.co", ""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last@sub.example.co"))
	assert.False(t, IsValidEmail("user@example"))
	assert.False(t, IsValidEmail("user example@x.co"))
	assert.False(t, IsValidEmail("@example.com"))
}
