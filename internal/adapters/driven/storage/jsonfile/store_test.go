package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alina998/hh-project/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "data", "fitting_vacancies.json"))
	require.NoError(t, err)
	return store
}

func programmer() domain.Vacancy {
	return domain.Vacancy{
		Name:        "Программист",
		City:        "Москва",
		Salary:      domain.Salary{From: 100000, To: 150000},
		URL:         "https://hh.ru/vacancy/1",
		Description: strPtr("Знание Python"),
	}
}

func tester() domain.Vacancy {
	return domain.Vacancy{
		Name:        "Тестировщик",
		City:        "Санкт-Петербург",
		URL:         "https://hh.ru/vacancy/2",
		Description: strPtr("Знание тестирования"),
	}
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_Load_AbsentFile(t *testing.T) {
	store := newTestStore(t)

	res, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Absent())
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "load must not create the file")
}

func TestStore_Load_EmptyArray(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("[]"), 0o644))

	res, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.StoreEmpty, res.State)
	assert.Empty(t, res.Vacancies)
}

func TestStore_Load_Corrupt(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrStoreCorrupt)
}

func TestStore_MergeWrite_NothingToSave(t *testing.T) {
	store := newTestStore(t)

	res, err := store.MergeWrite(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, domain.SaveNothingToSave, res.Status)
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "no I/O for empty input")
}

func TestStore_MergeWrite_CreatesFile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	res, err := store.MergeWrite(ctx, []domain.Vacancy{programmer()})
	require.NoError(t, err)
	assert.Equal(t, domain.SaveCreated, res.Status)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, store.Path(), res.Path)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Vacancies, 1)
	assert.Equal(t, "Программист", loaded.Vacancies[0].Name)
}

func TestStore_MergeWrite_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	batch := []domain.Vacancy{programmer(), tester()}

	_, err := store.MergeWrite(ctx, batch)
	require.NoError(t, err)
	res, err := store.MergeWrite(ctx, batch)
	require.NoError(t, err)

	assert.Equal(t, domain.SaveMerged, res.Status)
	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 2, res.Total)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, batch, loaded.Vacancies)
}

func TestStore_MergeWrite_AppendsInOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.MergeWrite(ctx, []domain.Vacancy{tester()})
	require.NoError(t, err)
	res, err := store.MergeWrite(ctx, []domain.Vacancy{programmer(), tester()})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Vacancies, 2)
	assert.Equal(t, "Тестировщик", loaded.Vacancies[0].Name)
	assert.Equal(t, "Программист", loaded.Vacancies[1].Name)
}

func TestStore_FileFormat(t *testing.T) {
	store := newTestStore(t)
	v := programmer()
	v.Description = strPtr("<highlighttext>Python</highlighttext> & Go")
	w := tester()
	w.Description = nil

	_, err := store.MergeWrite(context.Background(), []domain.Vacancy{v, w})
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "[\n    {\n        \"name\": \"Программист\""))
	assert.Contains(t, text, `"city": "Москва"`)
	assert.Contains(t, text, "<highlighttext>Python</highlighttext> & Go")
	assert.Contains(t, text, `"description": null`)
	assert.Contains(t, text, "\"salary\": {\n            \"from\": 100000,\n            \"to\": 150000\n        }")
	assert.NotContains(t, text, `\u`)
}

func TestStore_DeleteMatching(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, err := store.MergeWrite(ctx, []domain.Vacancy{programmer(), tester()})
	require.NoError(t, err)

	res, err := store.DeleteMatching(ctx, "Программист")
	require.NoError(t, err)
	require.Len(t, res.Vacancies, 1)
	assert.Equal(t, "Тестировщик", res.Vacancies[0].Name)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.Vacancies, loaded.Vacancies)
}

func TestStore_DeleteMatching_ByCityAndDescription(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	noDesc := tester()
	noDesc.Description = nil
	noDesc.City = "Казань"
	_, err := store.MergeWrite(ctx, []domain.Vacancy{programmer(), tester(), noDesc})
	require.NoError(t, err)

	res, err := store.DeleteMatching(ctx, "Петербург")
	require.NoError(t, err)
	assert.Len(t, res.Vacancies, 2)

	res, err = store.DeleteMatching(ctx, "Python")
	require.NoError(t, err)
	require.Len(t, res.Vacancies, 1)
	assert.Equal(t, "Казань", res.Vacancies[0].City)

	res, err = store.DeleteMatching(ctx, "Казань")
	require.NoError(t, err)
	assert.Equal(t, domain.StoreEmpty, res.State)
}

func TestStore_DeleteMatching_AbsentFile(t *testing.T) {
	store := newTestStore(t)

	res, err := store.DeleteMatching(context.Background(), "x")

	require.NoError(t, err)
	assert.True(t, res.Absent())
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_Find(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, err := store.MergeWrite(ctx, []domain.Vacancy{programmer(), tester()})
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "description substring", query: "Python", want: []string{"Программист"}},
		{name: "shared description substring", query: "Знание", want: []string{"Программист", "Тестировщик"}},
		{name: "exact name", query: "Тестировщик", want: []string{"Тестировщик"}},
		{name: "partial name", query: "Тестир", want: nil},
		{name: "exact city", query: "Москва", want: []string{"Программист"}},
		{name: "partial city", query: "Санкт", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := store.Find(ctx, tt.query)
			require.NoError(t, err)

			var names []string
			for _, v := range res.Vacancies {
				names = append(names, v.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestStore_Find_AbsentFile(t *testing.T) {
	store := newTestStore(t)

	res, err := store.Find(context.Background(), "Python")

	require.NoError(t, err)
	assert.True(t, res.Absent())
}

func TestStore_DeleteThenFind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, err := store.MergeWrite(ctx, []domain.Vacancy{programmer(), tester()})
	require.NoError(t, err)

	_, err = store.DeleteMatching(ctx, "Python")
	require.NoError(t, err)
	res, err := store.Find(ctx, "Python")
	require.NoError(t, err)

	assert.Empty(t, res.Vacancies)
}

func TestEncode_Nil(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
