package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/clog"
	"github.com/neurmill/toolrec/pkg/metrics"
	"github.com/neurmill/toolrec/pkg/recommend"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
)

type RecommendationController struct {
	stors  *stor.Stors
	ranker recommend.ToolRanker
}

func NewRecommendationController(stors *stor.Stors, ranker recommend.ToolRanker) *RecommendationController {
	return &RecommendationController{stors: stors, ranker: ranker}
}

type recommendationRequest struct {
	CADFileID int
	MachineID int
}

// CreateRecommendations recommends tools for the CAD file given in cadFileId on the machine
// given in machineId. The file must exist and have been parsed, and the machine must exist,
// checked in that order.
func (c *RecommendationController) CreateRecommendations(ctx echo.Context) error {
	var req recommendationRequest
	err := echo.QueryParamsBinder(ctx).
		MustInt("cadFileId", &req.CADFileID).
		MustInt("machineId", &req.MachineID).
		BindError()
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "cadFileId and machineId must be integers")
	}

	file, err := c.stors.CADFileStor.GetCADFileByID(req.CADFileID)
	if err != nil {
		return lookupErrorResponse(ctx, err, "CAD file not found")
	}

	if !file.Parsed {
		return errorResponse(ctx, http.StatusBadRequest, "CAD file has not been parsed yet")
	}

	machine, err := c.stors.MachineStor.GetMachineByID(req.MachineID)
	if err != nil {
		return lookupErrorResponse(ctx, err, "Machine not found")
	}

	features, err := c.stors.CADFeatureStor.ListFeaturesForCADFile(file.ID)
	if err != nil {
		return err
	}

	tools, err := c.stors.ToolStor.ListTools()
	if err != nil {
		return err
	}

	recommendations, err := c.ranker.Recommend(features, *machine, tools)
	if err != nil {
		clog.UsingCtx(clog.RecommendCtx).Errorf("Ranking tools for file %d on machine %d failed: %s", file.ID, machine.ID, err)
		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	if recommendations == nil {
		recommendations = []recommend.Recommendation{}
	}

	for _, rec := range recommendations {
		metrics.RecommendationsTotal.WithLabelValues(rec.Operation).Inc()
	}

	clog.UsingCtx(clog.RecommendCtx).Infof("%d recommendations for file %d on machine %d (%d tools considered)",
		len(recommendations), file.ID, machine.ID, len(tools))

	return ctx.JSON(http.StatusOK, recommendations)
}

type feedbackRequest struct {
	Rating int `validate:"min=1,max=5"`
}

// SubmitFeedback acknowledges a rating for a recommendation. Feedback is not stored.
func (c *RecommendationController) SubmitFeedback(ctx echo.Context) error {
	var req feedbackRequest
	if err := echo.QueryParamsBinder(ctx).MustInt("rating", &req.Rating).BindError(); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Rating must be between 1 and 5")
	}

	if err := validateRequest(req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Rating must be between 1 and 5")
	}

	resp := map[string]interface{}{
		"message":          "Feedback submitted successfully",
		"recommendationId": ctx.Param("id"),
		"rating":           req.Rating,
	}

	if comments := ctx.QueryParam("comments"); comments != "" {
		resp["comments"] = comments
	}

	clog.UsingCtx(clog.RecommendCtx).Infof("Feedback for recommendation %s: rating %d", ctx.Param("id"), req.Rating)

	return ctx.JSON(http.StatusOK, resp)
}
