// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the note operations as tools via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dverbeek/chirp/internal/noteservice"
)

// Server wraps the MCP server with note tools.
type Server struct {
	mcp *server.MCPServer
	svc *noteservice.Service
}

// New creates a new MCP server with all note tools registered.
func New(svc *noteservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Chirp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List all top-level notes, newest first."),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("list_replies",
		mcp.WithDescription("List the replies to a note, oldest first."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Id of the parent note")),
	), s.listReplies)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a note, or a reply when parent_id is given. "+
			"Text is limited to 280 characters and replies cannot be nested."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Note text (1-280 characters)")),
		mcp.WithNumber("parent_id", mcp.Description("Id of the note to reply to (omit for a top-level note)")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note together with all of its replies. "+
			"Deleting an unknown id succeeds with zero changes."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Id of the note to delete")),
	), s.deleteNote)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := s.svc.ListNotes(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(notes, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listReplies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	replies, err := s.svc.ListReplies(ctx, int64(id))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(replies, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var parentID *int64
	if p := req.GetInt("parent_id", 0); p != 0 {
		pid := int64(p)
		parentID = &pid
	}

	note, err := s.svc.CreateNote(ctx, text, parentID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(note, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) deleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.svc.DeleteNote(ctx, int64(id))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted %d row(s)", res.Changes)), nil
}
