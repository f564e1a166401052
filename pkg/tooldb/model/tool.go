package model

import "time"

// Tool types the recommender knows how to map to an operation.
const (
	ToolTypeEndMill     = "end_mill"
	ToolTypeBallEndMill = "ball_end_mill"
	ToolTypeDrill       = "drill"
)

type Tool struct {
	ID            int       `json:"id"`
	Name          string    `json:"name" gorm:"not null"`
	Type          string    `json:"type" gorm:"not null"`
	Material      string    `json:"material"`
	Diameter      float64   `json:"diameter"`
	FluteCount    *int      `json:"fluteCount"`
	OverallLength *float64  `json:"overallLength"`
	CuttingLength *float64  `json:"cuttingLength"`
	ShankDiameter *float64  `json:"shankDiameter"`
	MaxDepthOfCut *float64  `json:"maxDepthOfCut" gorm:"column:max_doc"`
	MaxRPM        *int      `json:"maxRpm"`
	Manufacturer  string    `json:"manufacturer"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Tool) TableName() string {
	return "tools"
}

// Flutes returns the flute count, treating an undeclared count as a single flute.
func (t Tool) Flutes() int {
	if t.FluteCount == nil {
		return 1
	}

	return *t.FluteCount
}
