package recommend

import (
	"testing"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

var testMachine = model.Machine{
	ID:              1,
	Name:            "Test Mill",
	MaxRPM:          10000,
	MaxFeedRate:     2000,
	MinToolDiameter: 5,
	MaxToolDiameter: 20,
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name string
		tool model.Tool
		want bool
	}{
		{name: "too large", tool: model.Tool{Type: model.ToolTypeDrill, Diameter: 25}, want: false},
		{name: "too small", tool: model.Tool{Type: model.ToolTypeEndMill, Diameter: 4.9}, want: false},
		{name: "no declared rpm", tool: model.Tool{Type: model.ToolTypeEndMill, Diameter: 10}, want: true},
		{name: "min diameter inclusive", tool: model.Tool{Diameter: 5, MaxRPM: intPtr(9000)}, want: true},
		{name: "max diameter inclusive", tool: model.Tool{Diameter: 20, MaxRPM: intPtr(10000)}, want: true},
		{name: "rpm above machine", tool: model.Tool{Diameter: 10, MaxRPM: intPtr(12000)}, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Compatible(test.tool, testMachine))
		})
	}
}

func TestCompatibleToolsKeepsOrder(t *testing.T) {
	tools := []model.Tool{
		{ID: 3, Diameter: 10},
		{ID: 1, Diameter: 30},
		{ID: 2, Diameter: 6},
	}

	compatible := CompatibleTools(tools, testMachine)
	require.Len(t, compatible, 2)
	assert.Equal(t, 3, compatible[0].ID)
	assert.Equal(t, 2, compatible[1].ID)
}

func TestSpeedAndFeedAreCappedByMachine(t *testing.T) {
	// Machine allows the tool's rpm but a higher-rpm machine caps the feed.
	machine := testMachine
	machine.MaxRPM = 15000
	tool := model.Tool{ID: 1, Name: "EM", Type: model.ToolTypeEndMill, Diameter: 10,
		MaxRPM: intPtr(12000), FluteCount: intPtr(4)}

	rec, err := NewRecommendation(tool, Operations[0], machine)
	require.NoError(t, err)
	assert.Equal(t, 12000, rec.Speed)
	assert.Equal(t, 2000.0, rec.Feed)
	assert.NotEmpty(t, rec.ID)

	// Without a declared flute count a single flute is assumed.
	tool.FluteCount = nil
	tool.MaxRPM = intPtr(8000)
	assert.InDelta(t, 8000*0.05, FeedRate(tool, 0.05, testMachine), 1e-9)

	tool.MaxRPM = nil
	assert.Equal(t, testMachine.MaxRPM, SpindleSpeed(tool, testMachine))
	assert.InDelta(t, 10000*0.02, FeedRate(tool, 0.02, testMachine), 1e-9)
}

func TestSpeedCappedAtMachineMaxRPM(t *testing.T) {
	tool := model.Tool{MaxRPM: intPtr(12000), FluteCount: intPtr(4)}
	assert.Equal(t, 10000, SpindleSpeed(tool, testMachine))
	assert.Equal(t, 2000.0, FeedRate(tool, 0.05, testMachine))
}

func TestFirstMatchRanker(t *testing.T) {
	tools := []model.Tool{
		{ID: 1, Name: "Big Drill", Type: model.ToolTypeDrill, Diameter: 25, MaxRPM: intPtr(5000)},
		{ID: 2, Name: "Ball 6", Type: model.ToolTypeBallEndMill, Diameter: 6, MaxRPM: intPtr(9000), FluteCount: intPtr(2)},
		{ID: 3, Name: "EM 10", Type: model.ToolTypeEndMill, Diameter: 10, MaxRPM: intPtr(8000), FluteCount: intPtr(3)},
		{ID: 4, Name: "EM 12", Type: model.ToolTypeEndMill, Diameter: 12, MaxRPM: intPtr(9000), FluteCount: intPtr(4)},
		{ID: 5, Name: "Fast Drill", Type: model.ToolTypeDrill, Diameter: 8, MaxRPM: intPtr(20000)},
	}

	recs, err := NewFirstMatchRanker().Recommend(nil, testMachine, tools)
	require.NoError(t, err)

	// No drill qualifies: one is too large, the other spins faster than the machine.
	require.Len(t, recs, 2)

	assert.Equal(t, "roughing", recs[0].Operation)
	assert.Equal(t, 3, recs[0].ToolID)
	assert.Equal(t, "EM 10", recs[0].ToolName)
	assert.Equal(t, 8000, recs[0].Speed)
	assert.InDelta(t, 8000*0.05*3, recs[0].Feed, 1e-9)

	assert.Equal(t, "finishing", recs[1].Operation)
	assert.Equal(t, 2, recs[1].ToolID)
	assert.InDelta(t, 9000*0.03*2, recs[1].Feed, 1e-9)

	assert.NotEqual(t, recs[0].ID, recs[1].ID)
}

func TestFirstMatchRankerWithNoTools(t *testing.T) {
	recs, err := NewFirstMatchRanker().Recommend(nil, testMachine, nil)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}
