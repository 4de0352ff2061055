package models

import (
	"time"

	"gorm.io/datatypes"
)

// Fixed enumerations. Department is a closed set; Status is the lifecycle
// sequence in display order (position defines progress, not allowed moves).
var (
	Departments = []string{"Marketing", "R&D", "Procurement", "IT", "HR", "Operations"}
	Statuses    = []string{"Ideation", "Pre-Evaluation", "Evaluation", "PoC", "MVP", "Live", "Archived"}
)

func IsValidDepartment(d string) bool { return contains(Departments, d) }
func IsValidStatus(s string) bool     { return contains(Statuses, s) }

// StatusProgress returns the lifecycle position of a status as a fraction in
// (0,1], or 0 for an unknown status. Used for display only; transitions
// between statuses are not restricted.
func StatusProgress(status string) float64 {
	for i, s := range Statuses {
		if s == status {
			return float64(i+1) / float64(len(Statuses))
		}
	}
	return 0
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// UseCase is a cataloged AI initiative record.
type UseCase struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title            string `gorm:"size:200;not null" json:"title"`
	ShortDescription string `gorm:"size:300;not null" json:"short_description"`
	FullDescription  string `gorm:"type:text;not null" json:"full_description"`
	Benefits         string `gorm:"type:text;not null" json:"benefits"`
	Department       string `gorm:"size:64;index;not null" json:"department"`
	Status           string `gorm:"size:64;index;not null" json:"status"`

	OwnerName         string                      `gorm:"size:255" json:"owner_name,omitempty"`
	OwnerEmail        string                      `gorm:"size:255" json:"owner_email,omitempty"`
	BusinessImpact    string                      `gorm:"type:text" json:"business_impact,omitempty"`
	TechnologyStack   datatypes.JSONSlice[string] `json:"technology_stack"`
	Tags              datatypes.JSONSlice[string] `json:"tags"`
	InternalLinks     datatypes.JSONMap           `json:"internal_links"`
	RelatedUseCaseIDs datatypes.JSONSlice[string] `json:"related_use_case_ids"`
	ApplicationURL    string                      `gorm:"size:512" json:"application_url,omitempty"`
}

func (UseCase) TableName() string { return "use_cases" }

// CreateUseCaseInput is the POST /use-cases payload.
type CreateUseCaseInput struct {
	Title             string         `json:"title"`
	ShortDescription  string         `json:"short_description"`
	FullDescription   string         `json:"full_description"`
	Benefits          string         `json:"benefits"`
	Department        string         `json:"department"`
	Status            string         `json:"status"`
	OwnerName         string         `json:"owner_name"`
	OwnerEmail        string         `json:"owner_email"`
	BusinessImpact    string         `json:"business_impact"`
	TechnologyStack   []string       `json:"technology_stack"`
	Tags              []string       `json:"tags"`
	InternalLinks     map[string]any `json:"internal_links"`
	RelatedUseCaseIDs []string       `json:"related_use_case_ids"`
	ApplicationURL    string         `json:"application_url"`
}

// UpdateUseCaseInput is the PUT /use-cases/{id} payload. Only fields present
// in the request body are applied; nil means "leave as is".
type UpdateUseCaseInput struct {
	Title             *string         `json:"title"`
	ShortDescription  *string         `json:"short_description"`
	FullDescription   *string         `json:"full_description"`
	Benefits          *string         `json:"benefits"`
	Department        *string         `json:"department"`
	Status            *string         `json:"status"`
	OwnerName         *string         `json:"owner_name"`
	OwnerEmail        *string         `json:"owner_email"`
	BusinessImpact    *string         `json:"business_impact"`
	TechnologyStack   *[]string       `json:"technology_stack"`
	Tags              *[]string       `json:"tags"`
	InternalLinks     *map[string]any `json:"internal_links"`
	RelatedUseCaseIDs *[]string       `json:"related_use_case_ids"`
	ApplicationURL    *string         `json:"application_url"`
}

func (p *UpdateUseCaseInput) IsEmpty() bool { return len(p.Changes()) == 0 }

// Changes flattens the patch into a column→value map for the store.
func (p *UpdateUseCaseInput) Changes() map[string]any {
	m := map[string]any{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.ShortDescription != nil {
		m["short_description"] = *p.ShortDescription
	}
	if p.FullDescription != nil {
		m["full_description"] = *p.FullDescription
	}
	if p.Benefits != nil {
		m["benefits"] = *p.Benefits
	}
	if p.Department != nil {
		m["department"] = *p.Department
	}
	if p.Status != nil {
		m["status"] = *p.Status
	}
	if p.OwnerName != nil {
		m["owner_name"] = *p.OwnerName
	}
	if p.OwnerEmail != nil {
		m["owner_email"] = *p.OwnerEmail
	}
	if p.BusinessImpact != nil {
		m["business_impact"] = *p.BusinessImpact
	}
	if p.TechnologyStack != nil {
		m["technology_stack"] = datatypes.NewJSONSlice(*p.TechnologyStack)
	}
	if p.Tags != nil {
		m["tags"] = datatypes.NewJSONSlice(*p.Tags)
	}
	if p.InternalLinks != nil {
		m["internal_links"] = datatypes.JSONMap(*p.InternalLinks)
	}
	if p.RelatedUseCaseIDs != nil {
		m["related_use_case_ids"] = datatypes.NewJSONSlice(*p.RelatedUseCaseIDs)
	}
	if p.ApplicationURL != nil {
		m["application_url"] = *p.ApplicationURL
	}
	return m
}
