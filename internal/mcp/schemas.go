package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// loadDocumentTool returns the tool definition for load_document
func loadDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "load_document",
		Description: "Load a Markdown+LaTeX document into the session, replacing any previous one",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document": map[string]interface{}{
					"type":        "string",
					"description": "Full document text (Markdown with LaTeX sectioning commands)",
				},
			},
			Required: []string{"document"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report session state: document version, size, section count, and pending proposals",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// parseDocumentTool returns the tool definition for parse_document
func parseDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "parse_document",
		Description: "Parse the loaded document into its section structure (LaTeX sectioning commands)",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// extractSectionsTool returns the tool definition for extract_sections
func extractSectionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "extract_sections",
		Description: "Extract the text spanned by the given section indices; falls back to the whole document when indices are empty or out of range",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"indices": map[string]interface{}{
					"type":        "array",
					"description": "Zero-based section indices from parse_document",
					"items": map[string]interface{}{
						"type": "integer",
					},
				},
			},
		},
	}
}

// checkBudgetTool returns the tool definition for check_budget
func checkBudgetTool() mcp.Tool {
	return mcp.Tool{
		Name:        "check_budget",
		Description: "Check whether the loaded document fits a model's token budget",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"model": map[string]interface{}{
					"type":        "string",
					"description": "Model name (e.g. 'gpt-4o-mini'); unknown models use the default budget",
				},
			},
		},
	}
}

// prepareContextTool returns the tool definition for prepare_context
func prepareContextTool() mcp.Tool {
	return mcp.Tool{
		Name:        "prepare_context",
		Description: "Produce a budget-fitting slice of the document, ranked by relevance to a query when one is given",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"model": map[string]interface{}{
					"type":        "string",
					"description": "Model whose budget bounds the result",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Optional query; when set, the most relevant chunk is selected instead of the first",
				},
				"max_chars": map[string]interface{}{
					"type":        "integer",
					"description": "Explicit character limit; overrides the model budget when positive",
					"minimum":     1,
				},
			},
		},
	}
}

// resolveSelectionTool returns the tool definition for resolve_selection
func resolveSelectionTool() mcp.Tool {
	return mcp.Tool{
		Name:        "resolve_selection",
		Description: "Map user-selected text back to character offsets in the loaded document",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"selection": map[string]interface{}{
					"type":        "string",
					"description": "The selected text as seen in the editor view",
				},
				"view_mode": map[string]interface{}{
					"type":        "string",
					"description": "View the selection came from; 'source' strips line-number prefixes",
					"enum":        []string{"source", "markdown"},
					"default":     "markdown",
				},
			},
			Required: []string{"selection"},
		},
	}
}

// proposeEditTool returns the tool definition for propose_edit
func proposeEditTool() mcp.Tool {
	return mcp.Tool{
		Name:        "propose_edit",
		Description: "Register an edit proposal (original text and its replacement) for later review",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"original": map[string]interface{}{
					"type":        "string",
					"description": "Text as it currently appears in the document",
				},
				"modified": map[string]interface{}{
					"type":        "string",
					"description": "Replacement text",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Optional human-readable summary of the edit",
				},
			},
			Required: []string{"original", "modified"},
		},
	}
}

// reviewEditTool returns the tool definition for review_edit
func reviewEditTool() mcp.Tool {
	return mcp.Tool{
		Name:        "review_edit",
		Description: "Render a pending proposal as a line diff, optionally compressed to context windows around changes",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"proposal_id": map[string]interface{}{
					"type":        "string",
					"description": "ID returned by propose_edit",
				},
				"context_lines": map[string]interface{}{
					"type":        "integer",
					"description": "Unchanged lines to keep around each change; omit for the full diff",
					"minimum":     0,
				},
			},
			Required: []string{"proposal_id"},
		},
	}
}

// acceptEditTool returns the tool definition for accept_edit
func acceptEditTool() mcp.Tool {
	return mcp.Tool{
		Name:        "accept_edit",
		Description: "Apply a pending proposal to the document and bump the version",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"proposal_id": map[string]interface{}{
					"type":        "string",
					"description": "ID returned by propose_edit",
				},
			},
			Required: []string{"proposal_id"},
		},
	}
}

// rejectEditTool returns the tool definition for reject_edit
func rejectEditTool() mcp.Tool {
	return mcp.Tool{
		Name:        "reject_edit",
		Description: "Discard a pending proposal without touching the document",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"proposal_id": map[string]interface{}{
					"type":        "string",
					"description": "ID returned by propose_edit",
				},
			},
			Required: []string{"proposal_id"},
		},
	}
}
