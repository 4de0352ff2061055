package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

// UseCaseStore is thin CRUD over the use_cases table. No business rules here;
// absence is reported as nil, not as an error.
type UseCaseStore struct{ db *gorm.DB }

func NewUseCaseStore(db *gorm.DB) *UseCaseStore { return &UseCaseStore{db: db} }

func (s *UseCaseStore) FindAll(ctx context.Context) ([]models.UseCase, error) {
	var out []models.UseCase
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *UseCaseStore) FindByID(ctx context.Context, id string) (*models.UseCase, error) {
	var uc models.UseCase
	err := s.db.WithContext(ctx).First(&uc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &uc, nil
}

func (s *UseCaseStore) FindByDepartment(ctx context.Context, department string) ([]models.UseCase, error) {
	var out []models.UseCase
	err := s.db.WithContext(ctx).
		Where("department = ?", department).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (s *UseCaseStore) FindByStatus(ctx context.Context, status string) ([]models.UseCase, error) {
	var out []models.UseCase
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Search does a case-insensitive substring match over title, short and full
// description. lower(...) LIKE keeps it portable across sqlite/mysql/postgres.
func (s *UseCaseStore) Search(ctx context.Context, query string) ([]models.UseCase, error) {
	q := "%" + strings.ToLower(query) + "%"
	var out []models.UseCase
	err := s.db.WithContext(ctx).
		Where("lower(title) LIKE ? OR lower(short_description) LIKE ? OR lower(full_description) LIKE ?", q, q, q).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (s *UseCaseStore) Create(ctx context.Context, uc *models.UseCase) error {
	if uc.ID == "" {
		uc.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(uc).Error
}

// Update applies the patch and returns the re-timestamped row, or nil if the
// row does not exist.
func (s *UseCaseStore) Update(ctx context.Context, id string, changes map[string]any) (*models.UseCase, error) {
	var uc models.UseCase
	err := s.db.WithContext(ctx).First(&uc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&uc).Updates(changes).Error; err != nil {
		return nil, err
	}
	return &uc, nil
}

// Delete reports whether a row existed and was removed.
func (s *UseCaseStore) Delete(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.UseCase{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *UseCaseStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.UseCase{}).Count(&n).Error
	return n, err
}

func (s *UseCaseStore) CountByDepartment(ctx context.Context, department string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.UseCase{}).
		Where("department = ?", department).Count(&n).Error
	return n, err
}

func (s *UseCaseStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.UseCase{}).
		Where("status = ?", status).Count(&n).Error
	return n, err
}
