package mcp

import (
	"context"

	"github.com/fwojciec/farmdocs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput is the input schema for the search_docs tool.
type SearchInput struct {
	Query   string `json:"query" jsonschema:"keywords to search the documentation for"`
	DocType string `json:"docType,omitempty" jsonschema:"restrict results to one documentation set: user-manual, scripting-reference or python-reference"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_docs tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID string   `json:"documentId"`
	Title      string   `json:"title"`
	Section    string   `json:"section,omitempty"`
	DocType    string   `json:"docType"`
	URL        string   `json:"url"`
	Score      float64  `json:"score"`
	Highlights []string `json:"highlights,omitempty"`
}

// GetDocumentInput is the input schema for the get_document tool.
type GetDocumentInput struct {
	ID string `json:"id" jsonschema:"the document ID returned by search_docs"`
}

// GetDocumentOutput is the output schema for the get_document tool.
type GetDocumentOutput struct {
	Document DocumentOutput `json:"document"`
}

// DocumentOutput represents a full document.
type DocumentOutput struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Section      string   `json:"section,omitempty"`
	DocType      string   `json:"docType"`
	URL          string   `json:"url"`
	Content      string   `json:"content"`
	Keywords     []string `json:"keywords,omitempty"`
	CodeExamples []string `json:"codeExamples,omitempty"`
}

// CodeExamplesInput is the input schema for the find_code_examples tool.
type CodeExamplesInput struct {
	Query string `json:"query" jsonschema:"keywords describing the code you are looking for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of snippets to return (default 5)"`
}

// CodeExamplesOutput is the output schema for the find_code_examples tool.
type CodeExamplesOutput struct {
	Examples []string `json:"examples"`
	Count    int      `json:"count"`
}

// BrowseInput is the input schema for the browse_sections tool.
type BrowseInput struct {
	Section string `json:"section" jsonschema:"section or title substring to browse, matched case-insensitively"`
	DocType string `json:"docType,omitempty" jsonschema:"restrict results to one documentation set"`
}

// BrowseOutput is the output schema for the browse_sections tool.
type BrowseOutput struct {
	Documents []SearchResultOutput `json:"documents"`
	Count     int                  `json:"count"`
}

// StatsOutput is the output schema for the doc_stats tool.
type StatsOutput struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"byType"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_docs",
		Description: "Search the render farm documentation by keyword",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Retrieve the full content of a document by ID",
	}, s.handleGetDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_code_examples",
		Description: "Find code snippets in the documentation matching a query",
	}, s.handleCodeExamples)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "browse_sections",
		Description: "List documents in a documentation section",
	}, s.handleBrowse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "doc_stats",
		Description: "Report how many documents are indexed per documentation set",
	}, s.handleStats)
}

// handleSearch handles the search_docs tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	docType, err := farmdocs.ParseDocType(input.DocType)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	opts := farmdocs.SearchOptions{DocType: docType, Limit: input.Limit}
	results, err := s.search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i, result := range results {
		output.Results[i] = searchResultOutput(result)
	}

	return nil, output, nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentInput,
) (*mcp.CallToolResult, GetDocumentOutput, error) {
	doc, err := s.search.FindDocumentByID(ctx, input.ID)
	if err != nil {
		return nil, GetDocumentOutput{}, err
	}

	return nil, GetDocumentOutput{Document: DocumentOutput{
		ID:           doc.ID,
		Title:        doc.Title,
		Section:      doc.Section,
		DocType:      string(doc.DocType),
		URL:          doc.URL,
		Content:      doc.Content,
		Keywords:     doc.Keywords,
		CodeExamples: doc.CodeExamples,
	}}, nil
}

// handleCodeExamples handles the find_code_examples tool invocation.
func (s *Server) handleCodeExamples(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CodeExamplesInput,
) (*mcp.CallToolResult, CodeExamplesOutput, error) {
	examples, err := s.search.CodeExamples(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, CodeExamplesOutput{}, err
	}

	return nil, CodeExamplesOutput{Examples: examples, Count: len(examples)}, nil
}

// handleBrowse handles the browse_sections tool invocation.
func (s *Server) handleBrowse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BrowseInput,
) (*mcp.CallToolResult, BrowseOutput, error) {
	docType, err := farmdocs.ParseDocType(input.DocType)
	if err != nil {
		return nil, BrowseOutput{}, err
	}

	docs, err := s.search.BrowseSection(ctx, input.Section, docType)
	if err != nil {
		return nil, BrowseOutput{}, err
	}

	output := BrowseOutput{
		Documents: make([]SearchResultOutput, len(docs)),
		Count:     len(docs),
	}
	for i, doc := range docs {
		output.Documents[i] = SearchResultOutput{
			DocumentID: doc.ID,
			Title:      doc.Title,
			Section:    doc.Section,
			DocType:    string(doc.DocType),
			URL:        doc.URL,
		}
	}

	return nil, output, nil
}

// handleStats handles the doc_stats tool invocation.
func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, StatsOutput, error) {
	stats, err := s.search.Stats(ctx)
	if err != nil {
		return nil, StatsOutput{}, err
	}

	output := StatsOutput{Total: stats.Total, ByType: make(map[string]int, len(stats.ByType))}
	for docType, count := range stats.ByType {
		output.ByType[string(docType)] = count
	}

	return nil, output, nil
}

func searchResultOutput(result *farmdocs.SearchResult) SearchResultOutput {
	return SearchResultOutput{
		DocumentID: result.Document.ID,
		Title:      result.Document.Title,
		Section:    result.Document.Section,
		DocType:    string(result.Document.DocType),
		URL:        result.Document.URL,
		Score:      result.Score,
		Highlights: result.Highlights,
	}
}
