package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/doccontext-mcp/internal/chunker"
	"github.com/dshills/doccontext-mcp/internal/diffview"
	"github.com/dshills/doccontext-mcp/internal/parser"
	"github.com/dshills/doccontext-mcp/internal/searcher"
	"github.com/dshills/doccontext-mcp/internal/session"
)

const (
	// ServerName is the MCP server name
	ServerName = "doccontext-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Config contains configuration for the MCP server
type Config struct {
	// DefaultModel is the model identifier assumed when a tool call does
	// not name one.
	DefaultModel string

	// MaxProposals caps the number of edit proposals held pending review.
	MaxProposals int
}

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	session  *session.Session
	parser   *parser.Parser
	chunker  *chunker.Chunker
	searcher *searcher.Searcher
	differ   *diffview.Engine

	defaultModel string
}

// NewServer creates a new MCP server instance
func NewServer(cfg Config) (*Server, error) {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = chunker.DefaultModel
	}

	sess, err := session.New(cfg.MaxProposals)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	c := chunker.New()

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:          mcpServer,
		session:      sess,
		parser:       parser.New(),
		chunker:      c,
		searcher:     searcher.NewSearcher(c),
		differ:       diffview.New(),
		defaultModel: cfg.DefaultModel,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(loadDocumentTool(), s.handleLoadDocument)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
	s.mcp.AddTool(parseDocumentTool(), s.handleParseDocument)
	s.mcp.AddTool(extractSectionsTool(), s.handleExtractSections)
	s.mcp.AddTool(checkBudgetTool(), s.handleCheckBudget)
	s.mcp.AddTool(prepareContextTool(), s.handlePrepareContext)
	s.mcp.AddTool(resolveSelectionTool(), s.handleResolveSelection)
	s.mcp.AddTool(proposeEditTool(), s.handleProposeEdit)
	s.mcp.AddTool(reviewEditTool(), s.handleReviewEdit)
	s.mcp.AddTool(acceptEditTool(), s.handleAcceptEdit)
	s.mcp.AddTool(rejectEditTool(), s.handleRejectEdit)
}
