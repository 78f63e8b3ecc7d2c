package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teachertube/backend/internal/catalog/models"
)

func TestTeacherStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewTeacherStore(t.TempDir(), zerolog.Nop())

	want := []models.Teacher{
		{ID: "t_1_a", Name: "Ann", Subject: "Math", Nickname: "A"},
		{ID: "t_2_b", Name: "Bob", Subject: "Physics"},
	}
	for i := range want {
		require.NoError(t, store.Create(ctx, &want[i]))
	}

	got, err := store.List(ctx)
	require.NoError(t, err)
	// Field-for-field identical after a write/read cycle.
	require.Equal(t, want, got)
}

func TestTeacherStore_DuplicateID(t *testing.T) {
	ctx := context.Background()
	store := NewTeacherStore(t.TempDir(), zerolog.Nop())

	require.NoError(t, store.Create(ctx, &models.Teacher{ID: "t_1_a", Name: "Ann", Subject: "Math"}))
	err := store.Create(ctx, &models.Teacher{ID: "t_1_a", Name: "Other", Subject: "Math"})
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestTeacherStore_Exists(t *testing.T) {
	ctx := context.Background()
	store := NewTeacherStore(t.TempDir(), zerolog.Nop())

	require.NoError(t, store.Create(ctx, &models.Teacher{ID: "t_1_a", Name: "Ann", Subject: "Math"}))

	ok, err := store.Exists(ctx, "t_1_a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "t_missing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.ExistsByNameSubject(ctx, "Ann", "Math")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.ExistsByNameSubject(ctx, "Ann", "Physics")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewTeacherStore(t.TempDir(), zerolog.Nop())

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_CorruptFileIsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewTeacherStore(dir, zerolog.Nop())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "teachers.json"), []byte("{not json"), 0o644))

	// Read-side corruption is recovered locally, never raised.
	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_IsPrettyPrintedJSON(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewTeacherStore(dir, zerolog.Nop())

	require.NoError(t, store.Create(ctx, &models.Teacher{ID: "t_1_a", Name: "Ann", Subject: "Math"}))

	data, err := os.ReadFile(filepath.Join(dir, "teachers.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
	assert.Contains(t, string(data), `"subject": "Math"`)
}

func TestVideoStore_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	store := NewVideoStore(t.TempDir(), zerolog.Nop())

	v1 := models.Video{ID: "v_1_x", TeacherID: "t_1_a", FileName: "v_1_x.mp4", URL: "/uploads/v_1_x.mp4", CreatedAt: 1}
	v2 := models.Video{ID: "v_2_y", TeacherID: "t_2_b", FileName: "v_2_y.mp4", URL: "/uploads/v_2_y.mp4", CreatedAt: 2}
	require.NoError(t, store.Create(ctx, &v1))
	require.NoError(t, store.Create(ctx, &v2))

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.Video{v1, v2}, all)

	byTeacher, err := store.ListByTeacher(ctx, "t_1_a")
	require.NoError(t, err)
	require.Equal(t, []models.Video{v1}, byTeacher)

	removed, err := store.Delete(ctx, "v_1_x")
	require.NoError(t, err)
	require.Equal(t, &v1, removed)

	all, err = store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.Video{v2}, all)

	_, err = store.Delete(ctx, "v_1_x")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestVideoStore_DeleteNotFoundLeavesCollection(t *testing.T) {
	ctx := context.Background()
	store := NewVideoStore(t.TempDir(), zerolog.Nop())

	v := models.Video{ID: "v_1_x", TeacherID: "t_1_a", FileName: "v_1_x.mp4"}
	require.NoError(t, store.Create(ctx, &v))

	_, err := store.Delete(ctx, "nonexistent-id")
	require.ErrorIs(t, err, models.ErrNotFound)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.Video{v}, all)
}

func TestRequestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewRequestStore(t.TempDir(), zerolog.Nop())

	r := models.TeacherRequest{ID: "r_1_z", Name: "Ann", Subject: "Math", Status: models.PendingStatus, CreatedAt: 1}
	require.NoError(t, store.Create(ctx, &r))

	got, err := store.GetByID(ctx, "r_1_z")
	require.NoError(t, err)
	require.Equal(t, &r, got)

	updated, err := store.UpdateStatus(ctx, "r_1_z", models.ApprovedStatus)
	require.NoError(t, err)
	require.Equal(t, models.ApprovedStatus, updated.Status)

	got, err = store.GetByID(ctx, "r_1_z")
	require.NoError(t, err)
	require.Equal(t, models.ApprovedStatus, got.Status)

	_, err = store.GetByID(ctx, "r_missing")
	require.ErrorIs(t, err, models.ErrNotFound)

	_, err = store.UpdateStatus(ctx, "r_missing", models.DeclinedStatus)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestStore_ConcurrentUpdatesLoseNothing(t *testing.T) {
	ctx := context.Background()
	store := NewTeacherStore(t.TempDir(), zerolog.Nop())

	// Every load→mutate→save runs under the collection lock, so concurrent
	// creates must not clobber each other.
	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_ = store.Create(ctx, &models.Teacher{
				ID:      fmt.Sprintf("t_%d_c", i),
				Name:    fmt.Sprintf("Teacher %d", i),
				Subject: "Math",
			})
		}(i)
	}
	wg.Wait()

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, writers)
}

func TestSave_WriteFailurePropagates(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewTeacherStore(dir, zerolog.Nop())

	// Make the collection path a directory so the overwrite fails.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "teachers.json"), 0o755))

	err := store.Create(ctx, &models.Teacher{ID: "t_1_a", Name: "Ann", Subject: "Math"})
	require.Error(t, err)
}
