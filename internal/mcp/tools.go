package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/doccontext-mcp/internal/chunker"
	"github.com/dshills/doccontext-mcp/internal/parser"
	"github.com/dshills/doccontext-mcp/internal/reconcile"
	"github.com/dshills/doccontext-mcp/internal/session"
	"github.com/dshills/doccontext-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeNoDocument      = -32001 // No document loaded in the session
	ErrorCodeUnknownProposal = -32002 // No pending proposal with that ID
	ErrorCodeStaleProposal   = -32003 // Proposal no longer applies to the document
)

// handleLoadDocument handles the load_document tool invocation
func (s *Server) handleLoadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	doc, ok := args["document"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "document parameter is required", map[string]interface{}{
			"param":  "document",
			"reason": "missing",
		})
	}

	version := s.session.Load(doc)
	sections := s.parser.Parse(doc)

	response := map[string]interface{}{
		"loaded":   true,
		"version":  version,
		"length":   len(doc),
		"sections": len(sections),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, version := s.session.Document()

	if version == 0 {
		response := map[string]interface{}{
			"loaded":  false,
			"message": "No document loaded. Use load_document to start a session.",
		}
		return mcp.NewToolResultText(formatJSON(response)), nil
	}

	sections := s.parser.Parse(doc)

	response := map[string]interface{}{
		"loaded":            true,
		"version":           version,
		"length":            len(doc),
		"sections":          len(sections),
		"estimated_tokens":  types.EstimateTokens(doc),
		"pending_proposals": s.session.PendingProposals(),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleParseDocument handles the parse_document tool invocation
func (s *Server) handleParseDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.currentDocument()
	if err != nil {
		return nil, err
	}

	sections := s.parser.Parse(doc)

	response := map[string]interface{}{
		"sections": sectionsPayload(sections),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleExtractSections handles the extract_sections tool invocation
func (s *Server) handleExtractSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	doc, err := s.currentDocument()
	if err != nil {
		return nil, err
	}

	indices, err := getIntSlice(args, "indices")
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid indices", map[string]interface{}{
			"param":  "indices",
			"reason": err.Error(),
		})
	}

	sections := s.parser.Parse(doc)
	res := parser.Extract(doc, sections, indices)

	response := map[string]interface{}{
		"text":           res.Text,
		"char_start":     res.CharStart,
		"char_end":       res.CharEnd,
		"sections":       len(res.Sections),
		"whole_document": res.CharStart == 0 && res.CharEnd == len(doc),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCheckBudget handles the check_budget tool invocation
func (s *Server) handleCheckBudget(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	doc, err := s.currentDocument()
	if err != nil {
		return nil, err
	}

	model := getStringDefault(args, "model", s.defaultModel)
	report := chunker.CheckBudget(doc, model)

	response := map[string]interface{}{
		"model":            model,
		"valid":            report.Valid,
		"estimated_tokens": report.EstimatedTokens,
		"max_tokens":       report.MaxTokens,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handlePrepareContext handles the prepare_context tool invocation
func (s *Server) handlePrepareContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	doc, err := s.currentDocument()
	if err != nil {
		return nil, err
	}

	model := getStringDefault(args, "model", s.defaultModel)
	query := getStringDefault(args, "query", "")

	maxChars := getIntDefault(args, "max_chars", 0)
	if maxChars <= 0 {
		maxChars = chunker.BudgetFor(model).MaxChars
	}

	res := s.searcher.Truncate(ctx, doc, maxChars, query)

	response := map[string]interface{}{
		"text":             res.Text,
		"truncated":        res.Truncated,
		"original_length":  res.OriginalLength,
		"estimated_tokens": types.EstimateTokens(res.Text),
		"model":            model,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleResolveSelection handles the resolve_selection tool invocation
func (s *Server) handleResolveSelection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	if _, err := s.currentDocument(); err != nil {
		return nil, err
	}

	selection, ok := args["selection"].(string)
	if !ok || selection == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "selection parameter is required", map[string]interface{}{
			"param":  "selection",
			"reason": "missing or empty",
		})
	}

	viewMode := getStringDefault(args, "view_mode", string(reconcile.ViewMarkdown))
	if viewMode != string(reconcile.ViewSource) && viewMode != string(reconcile.ViewMarkdown) {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid view_mode", map[string]interface{}{
			"param":   "view_mode",
			"value":   viewMode,
			"allowed": []string{string(reconcile.ViewSource), string(reconcile.ViewMarkdown)},
		})
	}

	sel, found := s.session.ResolveSelection(selection, reconcile.ViewMode(viewMode))

	// An unusable selection is a degradation, not an error: the caller
	// falls back to full-document targeting.
	response := map[string]interface{}{
		"found": found,
	}
	if found {
		response["start"] = sel.Start
		response["end"] = sel.End
		response["text"] = sel.Text
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleProposeEdit handles the propose_edit tool invocation
func (s *Server) handleProposeEdit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	if _, err := s.currentDocument(); err != nil {
		return nil, err
	}

	original, ok := args["original"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "original parameter is required", map[string]interface{}{
			"param":  "original",
			"reason": "missing",
		})
	}
	modified, ok := args["modified"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "modified parameter is required", map[string]interface{}{
			"param":  "modified",
			"reason": "missing",
		})
	}
	description := getStringDefault(args, "description", "")

	id, err := s.session.Propose(original, modified, description)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid proposal", map[string]interface{}{
			"reason": err.Error(),
		})
	}

	response := map[string]interface{}{
		"proposal_id": id,
		"description": description,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleReviewEdit handles the review_edit tool invocation
func (s *Server) handleReviewEdit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	id, ok := args["proposal_id"].(string)
	if !ok || id == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "proposal_id parameter is required", map[string]interface{}{
			"param":  "proposal_id",
			"reason": "missing or empty",
		})
	}

	proposal, found := s.session.Proposal(id)
	if !found {
		return nil, newMCPError(ErrorCodeUnknownProposal, "unknown proposal", map[string]interface{}{
			"proposal_id": id,
		})
	}

	contextLines := getIntDefault(args, "context_lines", -1)

	var lines []types.DiffLine
	if contextLines >= 0 {
		lines = s.differ.ContextualDiff(proposal.Original, proposal.Modified, contextLines)
	} else {
		lines = s.differ.Diff(proposal.Original, proposal.Modified)
	}

	response := map[string]interface{}{
		"proposal_id": id,
		"description": proposal.Description,
		"lines":       diffPayload(lines),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleAcceptEdit handles the accept_edit tool invocation
func (s *Server) handleAcceptEdit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, mcpErr := proposalID(request)
	if mcpErr != nil {
		return nil, mcpErr
	}

	doc, err := s.session.Accept(id)
	if errors.Is(err, session.ErrUnknownProposal) {
		return nil, newMCPError(ErrorCodeUnknownProposal, "unknown proposal", map[string]interface{}{
			"proposal_id": id,
		})
	}
	if errors.Is(err, session.ErrStaleProposal) {
		return nil, newMCPError(ErrorCodeStaleProposal, "document changed since proposal; re-propose against the current version", map[string]interface{}{
			"proposal_id": id,
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to accept proposal", map[string]interface{}{
			"error": err.Error(),
		})
	}

	_, version := s.session.Document()
	response := map[string]interface{}{
		"accepted": true,
		"version":  version,
		"length":   len(doc),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleRejectEdit handles the reject_edit tool invocation
func (s *Server) handleRejectEdit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, mcpErr := proposalID(request)
	if mcpErr != nil {
		return nil, mcpErr
	}

	if err := s.session.Reject(id); err != nil {
		return nil, newMCPError(ErrorCodeUnknownProposal, "unknown proposal", map[string]interface{}{
			"proposal_id": id,
		})
	}

	response := map[string]interface{}{
		"rejected": true,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// currentDocument returns the session document or an MCP error when no
// document has been loaded.
func (s *Server) currentDocument() (string, error) {
	doc, version := s.session.Document()
	if version == 0 {
		return "", newMCPError(ErrorCodeNoDocument, "no document loaded", map[string]interface{}{
			"reason": "use load_document to start a session",
		})
	}
	return doc, nil
}

// proposalID extracts the required proposal_id parameter.
func proposalID(request mcp.CallToolRequest) (string, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	id, ok := args["proposal_id"].(string)
	if !ok || id == "" {
		return "", newMCPError(ErrorCodeInvalidParams, "proposal_id parameter is required", map[string]interface{}{
			"param":  "proposal_id",
			"reason": "missing or empty",
		})
	}
	return id, nil
}

// sectionsPayload converts sections to the wire representation.
func sectionsPayload(sections []types.Section) []map[string]interface{} {
	payload := make([]map[string]interface{}, len(sections))
	for i, sec := range sections {
		payload[i] = map[string]interface{}{
			"index":      i,
			"title":      sec.Title,
			"command":    sec.Command,
			"level":      sec.Level,
			"char_start": sec.CharStart,
			"char_end":   sec.CharEnd,
			"line_start": sec.LineStart,
			"line_end":   sec.LineEnd,
		}
	}
	return payload
}

// diffPayload converts diff lines to the wire representation. Line numbers
// are only present on the side(s) where the line exists.
func diffPayload(lines []types.DiffLine) []map[string]interface{} {
	payload := make([]map[string]interface{}, len(lines))
	for i, line := range lines {
		entry := map[string]interface{}{
			"content": line.Content,
			"kind":    string(line.Kind),
		}
		if line.OldLine > 0 {
			entry["old_line"] = line.OldLine
		}
		if line.NewLine > 0 {
			entry["new_line"] = line.NewLine
		}
		payload[i] = entry
	}
	return payload
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getIntSlice extracts an integer slice parameter. A missing key yields an
// empty slice, which downstream extraction treats as "whole document".
func getIntSlice(args map[string]interface{}, key string) ([]int, error) {
	raw, ok := args[key]
	if !ok {
		return nil, nil
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an array of integers")
	}

	result := make([]int, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case float64:
			result = append(result, int(v))
		case int:
			result = append(result, v)
		default:
			return nil, fmt.Errorf("expected an array of integers")
		}
	}
	return result, nil
}
