package usecases

import (
	"context"
	"strings"

	"gorm.io/datatypes"

	"github.com/aishwaryaDel/aihub-bolt/internal/apperr"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
	"github.com/aishwaryaDel/aihub-bolt/internal/repo"
	"github.com/aishwaryaDel/aihub-bolt/internal/validation"
)

const (
	msgNotFound     = "Use case not found"
	msgCreateFailed = "Failed to create use case"
	msgUpdateFailed = "Failed to update use case"
	msgDeleteFailed = "Failed to delete use case"
	msgDatabase     = "Database operation failed"
	msgEmptyPatch   = "No update data provided"
)

// Service orchestrates the use-case store and enforces the entity invariants:
// enum membership, field bounds, existence before mutation.
type Service struct {
	store *repo.UseCaseStore
}

func NewService(store *repo.UseCaseStore) *Service { return &Service{store: store} }

func (s *Service) GetAll(ctx context.Context) ([]models.UseCase, error) {
	out, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.UseCase, error) {
	uc, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	if uc == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	return uc, nil
}

func (s *Service) GetByDepartment(ctx context.Context, department string) ([]models.UseCase, error) {
	if !models.IsValidDepartment(department) {
		return nil, apperr.BadRequest("department must be one of: " + strings.Join(models.Departments, ", "))
	}
	out, err := s.store.FindByDepartment(ctx, department)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	return out, nil
}

func (s *Service) GetByStatus(ctx context.Context, status string) ([]models.UseCase, error) {
	if !models.IsValidStatus(status) {
		return nil, apperr.BadRequest("status must be one of: " + strings.Join(models.Statuses, ", "))
	}
	out, err := s.store.FindByStatus(ctx, status)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	return out, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]models.UseCase, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.BadRequest("search query is required")
	}
	out, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in *models.CreateUseCaseInput) (*models.UseCase, error) {
	if err := validation.ValidateUseCase(in); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	uc := &models.UseCase{
		Title:             in.Title,
		ShortDescription:  in.ShortDescription,
		FullDescription:   in.FullDescription,
		Benefits:          in.Benefits,
		Department:        in.Department,
		Status:            in.Status,
		OwnerName:         in.OwnerName,
		OwnerEmail:        in.OwnerEmail,
		BusinessImpact:    in.BusinessImpact,
		TechnologyStack:   datatypes.NewJSONSlice(in.TechnologyStack),
		Tags:              datatypes.NewJSONSlice(in.Tags),
		InternalLinks:     datatypes.JSONMap(in.InternalLinks),
		RelatedUseCaseIDs: datatypes.NewJSONSlice(in.RelatedUseCaseIDs),
		ApplicationURL:    in.ApplicationURL,
	}
	if err := s.store.Create(ctx, uc); err != nil {
		return nil, apperr.Database(msgCreateFailed, err)
	}
	return uc, nil
}

// Update re-checks existence, validates any present fields, then applies the
// patch. A row vanishing between check and write surfaces as NotFound, it is
// not retried.
func (s *Service) Update(ctx context.Context, id string, in *models.UpdateUseCaseInput) (*models.UseCase, error) {
	if in.IsEmpty() {
		return nil, apperr.BadRequest(msgEmptyPatch)
	}
	if err := validation.ValidateUseCaseUpdate(in); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	uc, err := s.store.Update(ctx, id, in.Changes())
	if err != nil {
		return nil, apperr.Database(msgUpdateFailed, err)
	}
	if uc == nil {
		return nil, apperr.NotFound(msgUpdateFailed)
	}
	return uc, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return apperr.Database(msgDeleteFailed, err)
	}
	if !ok {
		return apperr.NotFound(msgDeleteFailed)
	}
	return nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, apperr.Database(msgDatabase, err)
	}
	return n, nil
}
