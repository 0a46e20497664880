// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"
	"time"

	"github.com/huangsam/teamdisc/core"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// filterOptions are the profile filter arguments shared by the read tools.
func filterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("department", mcp.Description("Only include profiles from this department (case-insensitive).")),
		mcp.WithString("team", mcp.Description("Only include profiles with this team code.")),
		mcp.WithString("from", mcp.Description("Earliest createdAt (RFC3339, YYYY-MM-DD, or 'N units ago').")),
		mcp.WithString("to", mcp.Description("Latest createdAt (RFC3339, YYYY-MM-DD, or 'N units ago').")),
	}
}

func newTool(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	return mcp.NewTool(name, append([]mcp.ToolOption{mcp.WithDescription(description)}, opts...)...)
}

// NewMCPServer initializes and configures the teamdisc MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(svc *core.Service, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Team DISC Analytics Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{
		svc: svc,
		now: time.Now,
	}

	// --- 1. Tool: score_disc ---
	s.AddTool(newTool("score_disc",
		"Score forced-choice DISC answers into Natural and Adaptive percentage vectors.",
		mcp.WithArray("answers",
			mcp.Description("One entry per item: the trait most and least like the respondent."),
			mcp.Required(),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"most":  map[string]any{"type": "string", "enum": []string{"D", "I", "S", "C"}},
					"least": map[string]any{"type": "string", "enum": []string{"D", "I", "S", "C"}},
				},
				"required": []string{"most", "least"},
			}),
		),
	), h.handleScoreDisc)

	// --- 2. Tool: score_driving_forces ---
	s.AddTool(newTool("score_driving_forces",
		"Score Driving Forces choices into pole counts and the primary pole of each axis.",
		mcp.WithArray("choices",
			mcp.Description("Chosen pole codes such as KI, US, SO, OI, PC, MR."),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), h.handleScoreDrivingForces)

	// --- 3. Tool: get_profile ---
	s.AddTool(newTool("get_profile",
		"Read one stored assessment profile by id.",
		mcp.WithString("id", mcp.Description("The profile id."), mcp.Required()),
	), h.handleGetProfile)

	// --- 4-9. Read tools over the filtered profile set ---
	s.AddTool(newTool("list_profiles",
		"List stored assessment profiles, oldest first.", filterOptions()...), h.handleListProfiles)
	s.AddTool(newTool("get_department_aggregates",
		"Average DISC vectors and primary-type distributions per department.", filterOptions()...), h.handleGetDepartments)
	s.AddTool(newTool("get_compatibility",
		"Score how well every pair of departments works together.", filterOptions()...), h.handleGetCompatibility)
	s.AddTool(newTool("get_team_composition",
		"Strengths, gaps, and recommendations for each department.", filterOptions()...), h.handleGetComposition)
	s.AddTool(newTool("get_communication_insights",
		"Preferred communication style for each department.", filterOptions()...), h.handleGetCommunication)
	s.AddTool(newTool("get_report",
		"Every analytics view computed over a single read of the profile set.", filterOptions()...), h.handleGetReport)

	return s
}

// StartMCPServer starts the teamdisc MCP server on stdio.
func StartMCPServer(_ context.Context, svc *core.Service, version string) error {
	s := NewMCPServer(svc, version)
	return server.ServeStdio(s)
}
