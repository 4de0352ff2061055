package users

import (
	"context"

	"github.com/aishwaryaDel/aihub-bolt/internal/apperr"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
	"github.com/aishwaryaDel/aihub-bolt/internal/repo"
	"github.com/aishwaryaDel/aihub-bolt/internal/validation"
)

const (
	msgNotFound    = "User not found"
	msgEmailTaken  = "User with this email already exists"
	msgDatabase    = "Database operation failed"
	msgEmptyPatch  = "No update data provided"
	msgInvalidRole = "role must be one of: admin, viewer"
)

// Service is the account-management side: admin-driven listing, update and
// removal. Credentials and tokens live in the auth service; this one never
// sees a plaintext password, and its read paths only ever return the
// sanitized projection.
type Service struct {
	store *repo.UserStore
}

func NewService(store *repo.UserStore) *Service { return &Service{store: store} }

func (s *Service) GetAll(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	return sanitize(users), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.PublicUser, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	if u == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	pu := u.Sanitized()
	return &pu, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*models.PublicUser, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	if u == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	pu := u.Sanitized()
	return &pu, nil
}

func (s *Service) GetByRole(ctx context.Context, role string) ([]models.PublicUser, error) {
	if !models.IsValidRole(role) {
		return nil, apperr.BadRequest(msgInvalidRole)
	}
	users, err := s.store.FindByRole(ctx, role)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	return sanitize(users), nil
}

// Update validates the patch, rejects an email already owned by a different
// account, then persists. A row vanishing between check and write surfaces
// as NotFound.
func (s *Service) Update(ctx context.Context, id string, in *models.UpdateUserInput) (*models.PublicUser, error) {
	if in.IsEmpty() {
		return nil, apperr.BadRequest(msgEmptyPatch)
	}
	if err := validation.ValidateUserUpdate(in); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if in.Email != nil {
		other, err := s.store.FindByEmail(ctx, *in.Email)
		if err != nil {
			return nil, apperr.Database(msgDatabase, err)
		}
		if other != nil && other.ID != id {
			return nil, apperr.Conflict(msgEmailTaken)
		}
	}
	u, err := s.store.Update(ctx, id, in.Changes())
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	if u == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	pu := u.Sanitized()
	return &pu, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return apperr.Database(msgDatabase, err)
	}
	if !ok {
		return apperr.NotFound(msgNotFound)
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

func sanitize(users []models.User) []models.PublicUser {
	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Sanitized())
	}
	return out
}
