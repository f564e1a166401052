package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
)

type ToolController struct {
	toolStor stor.ToolStor
}

func NewToolController(toolStor stor.ToolStor) *ToolController {
	return &ToolController{toolStor: toolStor}
}

func (c *ToolController) ListTools(ctx echo.Context) error {
	tools, err := c.toolStor.ListTools()
	if err != nil {
		return err
	}

	if tools == nil {
		tools = []model.Tool{}
	}

	return ctx.JSON(http.StatusOK, tools)
}

func (c *ToolController) GetTool(ctx echo.Context) error {
	toolID, err := intParam(ctx, "id")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tool id")
	}

	tool, err := c.toolStor.GetToolByID(toolID)
	if err != nil {
		return lookupErrorResponse(ctx, err, "Tool not found")
	}

	return ctx.JSON(http.StatusOK, tool)
}
