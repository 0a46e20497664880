package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/teamdisc/core"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	svc *core.Service
	now func() time.Time
}

// jsonResult renders v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// bindArguments decodes the raw tool arguments into target.
func bindArguments(request mcp.CallToolRequest, target any) error {
	raw, err := json.Marshal(request.GetArguments())
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}

// filterFrom builds a profile filter from the shared filter arguments.
func (h *toolHandler) filterFrom(request mcp.CallToolRequest) (schema.ProfileFilter, error) {
	filter := schema.ProfileFilter{
		Department: request.GetString("department", ""),
		TeamCode:   request.GetString("team", ""),
	}
	now := h.now()
	if s := request.GetString("from", ""); s != "" {
		t, err := contract.ParseDate(s, now, false)
		if err != nil {
			return filter, fmt.Errorf("invalid from date: %w", err)
		}
		filter.From = t
	}
	if s := request.GetString("to", ""); s != "" {
		t, err := contract.ParseDate(s, now, true)
		if err != nil {
			return filter, fmt.Errorf("invalid to date: %w", err)
		}
		filter.To = t
	}
	return filter, nil
}

// serviceError turns a service failure into a tool error message.
func serviceError(action string, err error) *mcp.CallToolResult {
	if errors.Is(err, contract.ErrProfileNotFound) {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", action, err))
}

func (h *toolHandler) handleScoreDisc(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Answers []schema.DiscAnswer `json:"answers"`
	}
	if err := bindArguments(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers: %v", err)), nil
	}
	if len(args.Answers) == 0 {
		return mcp.NewToolResultError("at least one answer is required"), nil
	}
	if err := core.ValidateDiscAnswers(args.Answers); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(core.ScoreDisc(args.Answers))
}

func (h *toolHandler) handleScoreDrivingForces(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Choices []schema.Pole `json:"choices"`
	}
	if err := bindArguments(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid choices: %v", err)), nil
	}
	if len(args.Choices) == 0 {
		return mcp.NewToolResultError("at least one choice is required"), nil
	}
	return jsonResult(core.ScoreDrivingForces(args.Choices))
}

func (h *toolHandler) handleGetProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	p, err := h.svc.Profile(ctx, id)
	if err != nil {
		return serviceError("profile lookup", err), nil
	}
	return jsonResult(p)
}

func (h *toolHandler) handleListProfiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := h.filterFrom(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	profiles, err := h.svc.Profiles(ctx, filter)
	if err != nil {
		return serviceError("profile listing", err), nil
	}
	return jsonResult(profiles)
}

func (h *toolHandler) handleGetDepartments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := h.filterFrom(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	summary, err := h.svc.Departments(ctx, filter)
	if err != nil {
		return serviceError("aggregation", err), nil
	}
	return jsonResult(summary)
}

// withReport runs the report and hands one view of it to pick.
func (h *toolHandler) withReport(ctx context.Context, request mcp.CallToolRequest, pick func(schema.AnalyticsReport) any) (*mcp.CallToolResult, error) {
	filter, err := h.filterFrom(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	report, err := h.svc.Report(ctx, filter)
	if err != nil {
		return serviceError("analysis", err), nil
	}
	return jsonResult(pick(report))
}

func (h *toolHandler) handleGetCompatibility(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withReport(ctx, request, func(r schema.AnalyticsReport) any { return r.Compatibility })
}

func (h *toolHandler) handleGetComposition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withReport(ctx, request, func(r schema.AnalyticsReport) any { return r.Composition })
}

func (h *toolHandler) handleGetCommunication(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withReport(ctx, request, func(r schema.AnalyticsReport) any { return r.Communication })
}

func (h *toolHandler) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.withReport(ctx, request, func(r schema.AnalyticsReport) any { return r })
}
