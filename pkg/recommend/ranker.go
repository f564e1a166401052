package recommend

import (
	"github.com/neurmill/toolrec/pkg/tooldb/model"
)

// ToolRanker chooses the tools to recommend for a design on a machine.
type ToolRanker interface {
	Recommend(features []model.CADFeature, machine model.Machine, tools []model.Tool) ([]Recommendation, error)
}

// FirstMatchRanker ignores the features. For each of Operations it takes the first
// compatible tool of the operation's type, in the order tools are given (storage order).
// There is no attempt to find the best tool, the first match wins. Operations without a
// compatible tool are left out.
type FirstMatchRanker struct{}

func NewFirstMatchRanker() *FirstMatchRanker {
	return &FirstMatchRanker{}
}

func (r *FirstMatchRanker) Recommend(_ []model.CADFeature, machine model.Machine, tools []model.Tool) ([]Recommendation, error) {
	compatible := CompatibleTools(tools, machine)
	recommendations := make([]Recommendation, 0, len(Operations))

	for _, op := range Operations {
		tool, ok := firstOfType(compatible, op.ToolType)
		if !ok {
			continue
		}

		rec, err := NewRecommendation(tool, op, machine)
		if err != nil {
			return nil, err
		}

		recommendations = append(recommendations, rec)
	}

	return recommendations, nil
}

func firstOfType(tools []model.Tool, toolType string) (model.Tool, bool) {
	for _, tool := range tools {
		if tool.Type == toolType {
			return tool, true
		}
	}

	return model.Tool{}, false
}
