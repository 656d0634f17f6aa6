package cli

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alina998/hh-project/internal/core/domain"
)

func storedVacancies() []domain.Vacancy {
	return []domain.Vacancy{
		{Name: "Python Developer", City: "Moscow", Salary: domain.Salary{From: 100000}, URL: "https://hh.ru/vacancy/1", Description: strPtr("Django and SQL")},
		{Name: "Go Developer", City: "Kazan", URL: "https://hh.ru/vacancy/2", Description: strPtr("Go and Kubernetes")},
		{Name: "Analyst", City: "Moscow", URL: "https://hh.ru/vacancy/3"},
	}
}

func seedStore(t *testing.T, env *testEnv) {
	t.Helper()
	_, err := env.store.MergeWrite(context.Background(), storedVacancies())
	require.NoError(t, err)
}

func TestListCmd_AbsentStore(t *testing.T) {
	env := setupTestServices(t)

	out, _, err := runCommand(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Store "+env.storePath+" does not exist.")
}

func TestListCmd_AbsentStoreJSON(t *testing.T) {
	setupTestServices(t)

	out, errOut, err := runCommand(t, "list", "--json")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
	assert.Contains(t, errOut, "does not exist")
}

func TestListCmd_PrintsVacancies(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	out, _, err := runCommand(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Vacancies (3):")
	assert.Contains(t, out, "[1] Python Developer (Moscow)")
	assert.Contains(t, out, "Salary: from 100000 RUR")
	assert.Contains(t, out, "[3] Analyst (Moscow)")
}

func TestListCmd_EmptyStore(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)
	_, err := env.store.DeleteMatching(context.Background(), "Developer")
	require.NoError(t, err)
	_, err = env.store.DeleteMatching(context.Background(), "Analyst")
	require.NoError(t, err)

	out, _, err := runCommand(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No vacancies found.")
}

func TestListCmd_JSON(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	out, _, err := runCommand(t, "list", "--json")

	require.NoError(t, err)
	var got []domain.Vacancy
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 3)
	assert.Nil(t, got[2].Description)
}

func TestListCmd_WatchUnsupported(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	_, _, err := runCommand(t, "list", "--watch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support --watch")
}

func TestListCmd_WatchReprints(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	changes := make(chan struct{}, 1)
	changes <- struct{}{}
	close(changes)
	storeWatcher = &mockWatcher{changes: changes}

	out, _, err := runCommand(t, "list", "-w")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Vacancies (3):"))
}

func TestFindCmd_SubstringInDescription(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	out, _, err := runCommand(t, "find", "Kubernetes")

	require.NoError(t, err)
	assert.Contains(t, out, "Vacancies (1):")
	assert.Contains(t, out, "Go Developer")
}

func TestFindCmd_ExactCity(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	out, _, err := runCommand(t, "find", "Moscow")

	require.NoError(t, err)
	assert.Contains(t, out, "Vacancies (2):")
	assert.Contains(t, out, "Analyst")
}

func TestFindCmd_PartialNameDoesNotMatch(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	out, _, err := runCommand(t, "find", "Analy")

	require.NoError(t, err)
	assert.Contains(t, out, "No vacancies found.")
}

func TestFindCmd_AbsentStore(t *testing.T) {
	setupTestServices(t)

	out, _, err := runCommand(t, "find", "Go")

	require.NoError(t, err)
	assert.Contains(t, out, "does not exist")
}

func TestFindCmd_JSON(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	out, _, err := runCommand(t, "find", "Django", "--json")

	require.NoError(t, err)
	var got []domain.Vacancy
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Python Developer", got[0].Name)
}

func TestDeleteCmd_RemovesMatching(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	out, _, err := runCommand(t, "delete", "Developer")

	require.NoError(t, err)
	assert.Contains(t, out, "1 vacancies remain in "+env.storePath)

	stored, err := env.store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored.Vacancies, 1)
	assert.Equal(t, "Analyst", stored.Vacancies[0].Name)
}

func TestDeleteCmd_AbsentStore(t *testing.T) {
	env := setupTestServices(t)

	out, _, err := runCommand(t, "delete", "Go")

	require.NoError(t, err)
	assert.Contains(t, out, "Store "+env.storePath+" does not exist.")
	assert.NoFileExists(t, env.storePath)
}

func TestDeleteCmd_EmptyPatternRejected(t *testing.T) {
	env := setupTestServices(t)
	seedStore(t, env)

	_, _, err := runCommand(t, "delete", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := env.store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored.Vacancies, 3)
}

func TestStoreCmds_NoService(t *testing.T) {
	setupTestServices(t)
	vacancyService = nil

	for _, args := range [][]string{{"list"}, {"find", "x"}, {"delete", "x"}} {
		_, _, err := runCommand(t, args...)
		assert.ErrorIs(t, err, errNoVacancyService, "%v", args)
	}
}

func TestListCmd_JSONMatchesStoreFile(t *testing.T) {
	env := setupTestServices(t)
	_, err := env.store.MergeWrite(context.Background(), []domain.Vacancy{
		{Name: "Разработчик Python", City: "Москва", URL: "https://hh.ru/vacancy/7",
			Description: strPtr("Опыт с <highlighttext>Django</highlighttext> & SQL")},
	})
	require.NoError(t, err)

	out, _, err := runCommand(t, "list", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, "<highlighttext>Django</highlighttext> & SQL")
	assert.NotContains(t, out, `\u003c`)

	stored, err := os.ReadFile(env.storePath)
	require.NoError(t, err)
	assert.Equal(t, string(stored), out)
}
