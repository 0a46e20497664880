package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/teamdisc/core"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/logging"
	"github.com/huangsam/teamdisc/schema"
)

// TeamCodeRequest asks for a batch of new team codes.
type TeamCodeRequest struct {
	Count int `json:"count"`
}

// TeamCodeResponse lists freshly generated team codes.
type TeamCodeResponse struct {
	Codes []string `json:"codes"`
}

// Controller exposes the service over HTTP.
type Controller struct {
	svc *core.Service
	now func() time.Time
}

// NewController wraps a service.
func NewController(svc *core.Service) *Controller {
	return &Controller{svc: svc, now: time.Now}
}

// RegisterRoutes mounts the public, analytics, and admin routes.
// Listing, analytics, and admin routes require adminToken when it is set.
func (c *Controller) RegisterRoutes(engine *gin.Engine, adminToken string) {
	public := engine.Group("/api")
	public.POST("/assessments", c.submitAssessment)
	public.GET("/profiles/:id", c.getProfile)

	gated := engine.Group("/api", AdminAuthMiddleware(adminToken))
	gated.GET("/profiles", c.listProfiles)
	gated.GET("/analytics/departments", c.getDepartments)
	gated.GET("/analytics/compatibility", c.getCompatibility)
	gated.GET("/analytics/composition", c.getComposition)
	gated.GET("/analytics/communication", c.getCommunication)
	gated.GET("/analytics/report", c.getReport)
	gated.POST("/admin/team-codes", c.createTeamCodes)
}

func (c *Controller) submitAssessment(g *gin.Context) {
	var sub schema.AssessmentSubmission
	if err := g.ShouldBindJSON(&sub); err != nil {
		g.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	profile, err := c.svc.Submit(g.Request.Context(), sub)
	if err != nil {
		logging.Log.Warnf("ASSESSMENT: submission rejected: %v", err)
		respondError(g, "submission", err)
		return
	}
	logging.Log.Infof("ASSESSMENT: stored profile %s for department %s", profile.ID, profile.Department)
	g.JSON(http.StatusCreated, profile)
}

func (c *Controller) getProfile(g *gin.Context) {
	profile, err := c.svc.Profile(g.Request.Context(), g.Param("id"))
	if err != nil {
		respondError(g, "profile lookup", err)
		return
	}
	g.JSON(http.StatusOK, profile)
}

func (c *Controller) listProfiles(g *gin.Context) {
	filter, ok := c.bindFilter(g)
	if !ok {
		return
	}
	profiles, err := c.svc.Profiles(g.Request.Context(), filter)
	if err != nil {
		respondError(g, "profile listing", err)
		return
	}
	g.JSON(http.StatusOK, profiles)
}

func (c *Controller) getDepartments(g *gin.Context) {
	filter, ok := c.bindFilter(g)
	if !ok {
		return
	}
	summary, err := c.svc.Departments(g.Request.Context(), filter)
	if err != nil {
		respondError(g, "aggregation", err)
		return
	}
	g.JSON(http.StatusOK, summary)
}

func (c *Controller) getCompatibility(g *gin.Context) {
	c.serveReport(g, func(r schema.AnalyticsReport) any { return r.Compatibility })
}

func (c *Controller) getComposition(g *gin.Context) {
	c.serveReport(g, func(r schema.AnalyticsReport) any { return r.Composition })
}

func (c *Controller) getCommunication(g *gin.Context) {
	c.serveReport(g, func(r schema.AnalyticsReport) any { return r.Communication })
}

func (c *Controller) getReport(g *gin.Context) {
	c.serveReport(g, func(r schema.AnalyticsReport) any { return r })
}

// serveReport runs one report and responds with the view chosen by pick.
func (c *Controller) serveReport(g *gin.Context, pick func(schema.AnalyticsReport) any) {
	filter, ok := c.bindFilter(g)
	if !ok {
		return
	}
	report, err := c.svc.Report(g.Request.Context(), filter)
	if err != nil {
		respondError(g, "analysis", err)
		return
	}
	g.JSON(http.StatusOK, pick(report))
}

func (c *Controller) createTeamCodes(g *gin.Context) {
	req := TeamCodeRequest{Count: 1}
	if g.Request.ContentLength > 0 {
		if err := g.ShouldBindJSON(&req); err != nil {
			g.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request, expected {\"count\": n}"})
			return
		}
	}

	codes, err := core.GenerateTeamCodes(req.Count)
	if err != nil {
		g.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	logging.Log.Infof("ADMIN: created %d team codes", len(codes))
	g.JSON(http.StatusOK, TeamCodeResponse{Codes: codes})
}

// bindFilter reads department, team, from, and to query parameters.
// It writes a 400 and reports false when a date does not parse.
func (c *Controller) bindFilter(g *gin.Context) (schema.ProfileFilter, bool) {
	filter := schema.ProfileFilter{
		Department: g.Query("department"),
		TeamCode:   g.Query("team"),
	}
	now := c.now()
	for _, bound := range []struct {
		key      string
		endOfDay bool
		target   *time.Time
	}{
		{"from", false, &filter.From},
		{"to", true, &filter.To},
	} {
		raw := g.Query(bound.key)
		if raw == "" {
			continue
		}
		t, err := contract.ParseDate(raw, now, bound.endOfDay)
		if err != nil {
			g.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid %s date: %v", bound.key, err)})
			return filter, false
		}
		*bound.target = t
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		g.JSON(http.StatusBadRequest, ErrorResponse{Error: "from cannot be after to"})
		return filter, false
	}
	return filter, true
}
