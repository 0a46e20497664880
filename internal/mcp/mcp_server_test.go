package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/huangsam/teamdisc/core"
	mcp_internal "github.com/huangsam/teamdisc/internal/mcp"
	"github.com/huangsam/teamdisc/internal/profilestore"
	"github.com/huangsam/teamdisc/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.MCPServer {
	t.Helper()
	store := profilestore.NewMemoryStore()
	n := 0
	svc := core.NewService(store,
		core.WithClock(func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) }),
		core.WithIDGenerator(func() string { n++; return fmt.Sprintf("p-%d", n) }),
	)

	ctx := context.Background()
	for _, sub := range []schema.AssessmentSubmission{
		{Identity: schema.Identity{Name: "Ada", Department: "Engineering"}, DiscAnswers: []schema.DiscAnswer{{Most: schema.C, Least: schema.I}}},
		{Identity: schema.Identity{Name: "Bo", Department: "Sales"}, DiscAnswers: []schema.DiscAnswer{{Most: schema.I, Least: schema.C}}},
	} {
		_, err := svc.Submit(ctx, sub)
		require.NoError(t, err)
	}
	return mcp_internal.NewMCPServer(svc, "test")
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s should exist", name)

	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Name: name, Arguments: args}}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServer_ScoreTools(t *testing.T) {
	s := newTestServer(t)

	t.Run("score_disc", func(t *testing.T) {
		res := callTool(t, s, "score_disc", map[string]any{
			"answers": []any{map[string]any{"most": "D", "least": "I"}},
		})
		require.False(t, res.IsError, resultText(res))

		var dp schema.DiscProfile
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &dp))
		assert.Equal(t, schema.Scores{100, 0, 0, 0}, dp.Natural)
		assert.Equal(t, schema.Scores{60, 0, 20, 20}, dp.Adaptive)
	})

	t.Run("score_disc same most and least", func(t *testing.T) {
		res := callTool(t, s, "score_disc", map[string]any{
			"answers": []any{map[string]any{"most": "D", "least": "D"}},
		})
		assert.True(t, res.IsError)
	})

	t.Run("score_disc unknown trait", func(t *testing.T) {
		res := callTool(t, s, "score_disc", map[string]any{
			"answers": []any{map[string]any{"most": "X", "least": "D"}},
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "invalid answers")
	})

	t.Run("score_disc empty", func(t *testing.T) {
		res := callTool(t, s, "score_disc", map[string]any{"answers": []any{}})
		assert.True(t, res.IsError)
	})

	t.Run("score_driving_forces", func(t *testing.T) {
		res := callTool(t, s, "score_driving_forces", map[string]any{"choices": []any{"KN", "KN", "UR"}})
		require.False(t, res.IsError, resultText(res))

		var result schema.DrivingForceResult
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &result))
		assert.Equal(t, 2, result.Scores[schema.KN])
		assert.Equal(t, schema.KN, result.PrimaryForces[schema.Knowledge])
	})
}

func TestMCPServer_ReadTools(t *testing.T) {
	s := newTestServer(t)

	t.Run("list_profiles filtered", func(t *testing.T) {
		res := callTool(t, s, "list_profiles", map[string]any{"department": "sales"})
		require.False(t, res.IsError, resultText(res))
		var profiles []schema.Profile
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &profiles))
		require.Len(t, profiles, 1)
		assert.Equal(t, "Bo", profiles[0].Name)
	})

	t.Run("get_profile missing", func(t *testing.T) {
		res := callTool(t, s, "get_profile", map[string]any{"id": "nope"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "not found")
	})

	t.Run("get_compatibility", func(t *testing.T) {
		res := callTool(t, s, "get_compatibility", map[string]any{})
		require.False(t, res.IsError, resultText(res))
		var pairs []schema.Compatibility
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &pairs))
		require.Len(t, pairs, 1)
		assert.Equal(t, "Engineering", pairs[0].Dept1)
	})

	t.Run("get_report", func(t *testing.T) {
		res := callTool(t, s, "get_report", map[string]any{})
		require.False(t, res.IsError, resultText(res))
		var report schema.AnalyticsReport
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &report))
		assert.Equal(t, 2, report.ProfileCount)
		assert.Len(t, report.Departments, 2)
		assert.Len(t, report.Composition, 2)
		assert.Len(t, report.Communication, 2)
	})

	t.Run("get_department_aggregates invalid date", func(t *testing.T) {
		res := callTool(t, s, "get_department_aggregates", map[string]any{"from": "last tuesday"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "invalid from date")
	})
}
