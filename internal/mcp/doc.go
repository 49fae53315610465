// Package mcp implements the Model Context Protocol (MCP) server for DocContext.
//
// The MCP server exposes the document-context tools to AI writing assistants:
//   - load_document: Load a Markdown+LaTeX document into the session
//   - get_status: Report session state and pending proposals
//   - parse_document: Parse the document into its section structure
//   - extract_sections: Extract the text spanned by section indices
//   - check_budget: Check the document against a model's token budget
//   - prepare_context: Produce a budget-fitting, query-relevant slice
//   - resolve_selection: Map selected text back to document offsets
//   - propose_edit / review_edit / accept_edit / reject_edit: The edit
//     proposal lifecycle with line-diff review
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Because stdout carries the protocol, nothing else in the process may
// write to it; logging goes to stderr.
//
// # Session Model
//
// The server holds exactly one document at a time. load_document replaces
// the previous document and bumps an integer version; every other tool
// operates on the current document and fails with a no-document error when
// nothing has been loaded. Edit proposals are keyed by a content hash and
// held in a bounded LRU until accepted or rejected; accepting a proposal
// whose original text no longer appears in the document returns a stale
// error and the caller re-proposes against the current version.
//
// # Tool: prepare_context
//
// Produce a slice of the document that fits a model budget:
//
//	Request:
//	{
//	  "name": "prepare_context",
//	  "arguments": {
//	    "model": "gpt-4o-mini",
//	    "query": "boundary conditions",
//	    "max_chars": 4000
//	  }
//	}
//
//	Response:
//	{
//	  "text": "...",
//	  "truncated": true,
//	  "original_length": 18230,
//	  "estimated_tokens": 974,
//	  "model": "gpt-4o-mini"
//	}
//
// # Tool: review_edit
//
// Render a pending proposal as a line diff. With context_lines set, the
// diff is compressed to windows around changes, separated by "..." marker
// lines:
//
//	Request:
//	{
//	  "name": "review_edit",
//	  "arguments": {
//	    "proposal_id": "9f2a6c...",
//	    "context_lines": 2
//	  }
//	}
//
//	Response:
//	{
//	  "proposal_id": "9f2a6c...",
//	  "description": "tighten the abstract",
//	  "lines": [
//	    {"content": "\\section{Abstract}", "kind": "unchanged", "old_line": 1, "new_line": 1},
//	    {"content": "old sentence", "kind": "removed", "old_line": 2},
//	    {"content": "new sentence", "kind": "added", "new_line": 2}
//	  ]
//	}
//
// # Error Handling
//
// Handlers return *MCPError with JSON-RPC codes: -32602 for invalid
// parameters, -32603 for internal failures, and server-range codes for
// domain errors (no document loaded, unknown proposal, stale proposal).
package mcp
