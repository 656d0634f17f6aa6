package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// SearchInput is the input schema for the search_vacancies tool.
type SearchInput struct {
	Query    string   `json:"query" jsonschema:"the hh.ru search query"`
	Keywords []string `json:"keywords" jsonschema:"keep vacancies whose requirements contain any of these words (case-sensitive)"`
	Top      int      `json:"top,omitempty" jsonschema:"return at most this many vacancies (0 = all)"`
	Save     bool     `json:"save,omitempty" jsonschema:"merge the results into the local store"`
}

// SearchOutput is the output schema for the search_vacancies tool.
type SearchOutput struct {
	Vacancies []VacancyOutput `json:"vacancies"`
	Count     int             `json:"count"`

	// Warning is set when the fetch stopped early and results are partial.
	Warning string `json:"warning,omitempty"`

	// Saved describes the store write when save was requested.
	Saved *SaveOutput `json:"saved,omitempty"`
}

// SaveOutput reports a store write.
type SaveOutput struct {
	Status string `json:"status"`
	Added  int    `json:"added"`
	Total  int    `json:"total"`
	Path   string `json:"path"`
}

// ListInput is the input schema for the list_vacancies tool. It takes no arguments.
type ListInput struct{}

// SubstringInput is the input schema for the find and delete tools.
type SubstringInput struct {
	Substring string `json:"substring" jsonschema:"case-sensitive text to match"`
}

// StoreOutput is the output schema for tools that read the store.
type StoreOutput struct {
	// State is absent, empty or populated.
	State     string          `json:"state"`
	Vacancies []VacancyOutput `json:"vacancies"`
	Count     int             `json:"count"`
	Path      string          `json:"path"`
}

// VacancyOutput represents a single vacancy.
type VacancyOutput struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	SalaryFrom  int    `json:"salary_from"`
	SalaryTo    int    `json:"salary_to"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_vacancies",
		Description: "Search hh.ru for vacancies whose requirements mention the given keywords",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_vacancies",
		Description: "List every vacancy in the local store",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "find_vacancies",
		Description: "Find stored vacancies whose requirement contains the substring " +
			"or whose name or city equals it",
	}, s.handleFind)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_vacancies",
		Description: "Delete stored vacancies whose name, city or requirement contains the substring",
	}, s.handleDelete)
}

// handleSearch handles the search_vacancies tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if input.Query == "" {
		return nil, SearchOutput{}, errors.New("query is required")
	}

	req := domain.SearchRequest{
		Query:    input.Query,
		TopN:     input.Top,
		Keywords: input.Keywords,
	}
	results, err := s.ports.Vacancy.Search(ctx, req)
	if err != nil && len(results) == 0 {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Vacancies: toOutputs(results),
		Count:     len(results),
	}
	if err != nil {
		output.Warning = err.Error()
	}

	if input.Save {
		saved, err := s.ports.Vacancy.Save(ctx, results)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		output.Saved = &SaveOutput{
			Status: saved.Status.String(),
			Added:  saved.Added,
			Total:  saved.Total,
			Path:   saved.Path,
		}
	}

	return nil, output, nil
}

// handleList handles the list_vacancies tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, StoreOutput, error) {
	result, err := s.ports.Vacancy.List(ctx)
	if err != nil {
		return nil, StoreOutput{}, err
	}
	return nil, s.storeOutput(result), nil
}

// handleFind handles the find_vacancies tool invocation.
func (s *Server) handleFind(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SubstringInput,
) (*mcp.CallToolResult, StoreOutput, error) {
	result, err := s.ports.Vacancy.Find(ctx, input.Substring)
	if err != nil {
		return nil, StoreOutput{}, err
	}
	return nil, s.storeOutput(result), nil
}

// handleDelete handles the delete_vacancies tool invocation.
// The output lists the vacancies that remain.
func (s *Server) handleDelete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SubstringInput,
) (*mcp.CallToolResult, StoreOutput, error) {
	result, err := s.ports.Vacancy.Delete(ctx, input.Substring)
	if err != nil {
		return nil, StoreOutput{}, err
	}
	return nil, s.storeOutput(result), nil
}

func (s *Server) storeOutput(result domain.StoreResult) StoreOutput {
	return StoreOutput{
		State:     result.State.String(),
		Vacancies: toOutputs(result.Vacancies),
		Count:     len(result.Vacancies),
		Path:      s.ports.Vacancy.StorePath(),
	}
}

func toOutputs(vacancies []domain.Vacancy) []VacancyOutput {
	out := make([]VacancyOutput, len(vacancies))
	for i := range vacancies {
		out[i] = VacancyOutput{
			Name:        vacancies[i].Name,
			City:        vacancies[i].City,
			SalaryFrom:  vacancies[i].Salary.From,
			SalaryTo:    vacancies[i].Salary.To,
			URL:         vacancies[i].URL,
			Description: vacancies[i].DescriptionText(),
		}
	}
	return out
}
