// Package recommend picks tools for a machine and computes their speeds and feeds.
package recommend

import (
	"github.com/hashicorp/go-uuid"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
)

// Operation is a machining step and the tool type and chip load used for it.
type Operation struct {
	Name     string
	ToolType string
	ChipLoad float64
}

// Operations are the steps a recommendation covers, in the order they are reported.
var Operations = []Operation{
	{Name: "roughing", ToolType: model.ToolTypeEndMill, ChipLoad: 0.05},
	{Name: "finishing", ToolType: model.ToolTypeBallEndMill, ChipLoad: 0.03},
	{Name: "drilling", ToolType: model.ToolTypeDrill, ChipLoad: 0.02},
}

type Recommendation struct {
	ID        string  `json:"id"`
	ToolID    int     `json:"toolId"`
	ToolName  string  `json:"toolName"`
	Operation string  `json:"operation"`
	Speed     int     `json:"speed"`
	Feed      float64 `json:"feed"`
}

// Compatible reports whether the machine can run the tool. The tool diameter must be within
// the machine's inclusive diameter range, and a declared tool max RPM must not exceed the
// machine's.
func Compatible(tool model.Tool, machine model.Machine) bool {
	if !machine.AcceptsDiameter(tool.Diameter) {
		return false
	}

	if tool.MaxRPM != nil && *tool.MaxRPM > machine.MaxRPM {
		return false
	}

	return true
}

// CompatibleTools filters tools down to those the machine can run, keeping their order.
func CompatibleTools(tools []model.Tool, machine model.Machine) []model.Tool {
	var compatible []model.Tool
	for _, tool := range tools {
		if Compatible(tool, machine) {
			compatible = append(compatible, tool)
		}
	}

	return compatible
}

// SpindleSpeed is the tool's max RPM capped at the machine's. A tool that doesn't declare
// a max RPM runs at the machine's max.
func SpindleSpeed(tool model.Tool, machine model.Machine) int {
	if tool.MaxRPM == nil {
		return machine.MaxRPM
	}

	return min(*tool.MaxRPM, machine.MaxRPM)
}

// FeedRate is rpm * chipLoad * flutes, capped at the machine's max feed rate. The rpm is
// the tool's max RPM, or the machine's when the tool doesn't declare one.
func FeedRate(tool model.Tool, chipLoad float64, machine model.Machine) float64 {
	rpm := machine.MaxRPM
	if tool.MaxRPM != nil {
		rpm = *tool.MaxRPM
	}

	feed := float64(rpm) * chipLoad * float64(tool.Flutes())

	return min(feed, machine.MaxFeedRate)
}

// NewRecommendation builds the recommendation for running tool on machine for op.
func NewRecommendation(tool model.Tool, op Operation, machine model.Machine) (Recommendation, error) {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return Recommendation{}, err
	}

	return Recommendation{
		ID:        id,
		ToolID:    tool.ID,
		ToolName:  tool.Name,
		Operation: op.Name,
		Speed:     SpindleSpeed(tool, machine),
		Feed:      FeedRate(tool, op.ChipLoad, machine),
	}, nil
}
