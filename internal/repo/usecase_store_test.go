package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(t.TempDir()+"/test.sqlite"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UseCase{}, &models.User{}))
	return db
}

func newUseCase(title string, createdAt time.Time) *models.UseCase {
	return &models.UseCase{
		CreatedAt:        createdAt,
		Title:            title,
		ShortDescription: "short",
		FullDescription:  "full",
		Benefits:         "benefits",
		Department:       "IT",
		Status:           "Ideation",
	}
}

func TestUseCaseStoreCreateAndFind(t *testing.T) {
	s := NewUseCaseStore(openTestDB(t))
	ctx := context.Background()

	uc := newUseCase("Chatbot", time.Time{})
	uc.Tags = []string{"nlp", "support"}
	uc.InternalLinks = map[string]any{"wiki": "https://wiki.local/chatbot"}
	require.NoError(t, s.Create(ctx, uc))
	require.NotEmpty(t, uc.ID)

	got, err := s.FindByID(ctx, uc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Chatbot", got.Title)
	assert.Equal(t, []string{"nlp", "support"}, []string(got.Tags))
	assert.Equal(t, "https://wiki.local/chatbot", got.InternalLinks["wiki"])
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUseCaseStoreFindByIDAbsent(t *testing.T) {
	s := NewUseCaseStore(openTestDB(t))
	got, err := s.FindByID(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUseCaseStoreOrdering(t *testing.T) {
	s := NewUseCaseStore(openTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Create(ctx, newUseCase("oldest", base)))
	require.NoError(t, s.Create(ctx, newUseCase("middle", base.Add(time.Minute))))
	require.NoError(t, s.Create(ctx, newUseCase("newest", base.Add(2*time.Minute))))

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Title)
	assert.Equal(t, "oldest", all[2].Title)
}

func TestUseCaseStoreFilters(t *testing.T) {
	s := NewUseCaseStore(openTestDB(t))
	ctx := context.Background()

	a := newUseCase("a", time.Time{})
	a.Department = "HR"
	b := newUseCase("b", time.Time{})
	b.Department = "IT"
	b.Status = "Live"
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Create(ctx, b))

	hr, err := s.FindByDepartment(ctx, "HR")
	require.NoError(t, err)
	require.Len(t, hr, 1)
	assert.Equal(t, "a", hr[0].Title)

	live, err := s.FindByStatus(ctx, "Live")
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "b", live[0].Title)

	n, err := s.CountByDepartment(ctx, "IT")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = s.CountByStatus(ctx, "Ideation")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestUseCaseStoreSearch(t *testing.T) {
	s := NewUseCaseStore(openTestDB(t))
	ctx := context.Background()

	a := newUseCase("Forecasting Model", time.Time{})
	a.FullDescription = "predicts demand"
	b := newUseCase("Chatbot", time.Time{})
	b.ShortDescription = "answers FORECAST questions"
	c := newUseCase("Unrelated", time.Time{})
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Create(ctx, b))
	require.NoError(t, s.Create(ctx, c))

	// case-insensitive, matches title and descriptions
	got, err := s.Search(ctx, "foreCAST")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.Search(ctx, "demand")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Forecasting Model", got[0].Title)
}

func TestUseCaseStoreUpdate(t *testing.T) {
	s := NewUseCaseStore(openTestDB(t))
	ctx := context.Background()

	uc := newUseCase("before", time.Time{})
	require.NoError(t, s.Create(ctx, uc))
	created := uc.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	got, err := s.Update(ctx, uc.ID, map[string]any{"title": "after", "status": "Live"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "Live", got.Status)
	assert.True(t, got.UpdatedAt.After(created))

	missing, err := s.Update(ctx, "nope", map[string]any{"title": "x"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUseCaseStoreDelete(t *testing.T) {
	s := NewUseCaseStore(openTestDB(t))
	ctx := context.Background()

	uc := newUseCase("to delete", time.Time{})
	require.NoError(t, s.Create(ctx, uc))

	ok, err := s.Delete(ctx, uc.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.FindByID(ctx, uc.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = s.Delete(ctx, uc.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUseCaseStoreCount(t *testing.T) {
	s := NewUseCaseStore(openTestDB(t))
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	require.NoError(t, s.Create(ctx, newUseCase("one", time.Time{})))
	require.NoError(t, s.Create(ctx, newUseCase("two", time.Time{})))

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
