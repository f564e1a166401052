package model

import "time"

type Machine struct {
	ID              int       `json:"id"`
	Name            string    `json:"name" gorm:"not null"`
	Model           string    `json:"model"`
	Manufacturer    string    `json:"manufacturer"`
	MaxRPM          int       `json:"maxRpm"`
	MaxFeedRate     float64   `json:"maxFeedRate"`
	SpindlePower    float64   `json:"spindlePower"`
	MaxToolDiameter float64   `json:"maxToolDiameter"`
	MinToolDiameter float64   `json:"minToolDiameter"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Machine) TableName() string {
	return "machines"
}

// AcceptsDiameter returns true when d is within the machine's tool diameter range. Both
// ends of the range are inclusive.
func (m Machine) AcceptsDiameter(d float64) bool {
	return d >= m.MinToolDiameter && d <= m.MaxToolDiameter
}
