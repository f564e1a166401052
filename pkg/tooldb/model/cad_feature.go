package model

import "time"

// CADFeature is a geometric feature found in a CADFile. Which of the dimension fields are
// set depends on the kind of feature, a hole has a radius while a pocket has width and height.
type CADFeature struct {
	ID          int       `json:"id"`
	CADFileID   int       `json:"cadFileId" gorm:"not null;index"`
	CADFile     *CADFile  `json:"-" gorm:"foreignKey:CADFileID;references:ID"`
	FeatureName string    `json:"featureName"`
	XPosition   *float64  `json:"xPosition"`
	YPosition   *float64  `json:"yPosition"`
	ZPosition   *float64  `json:"zPosition"`
	Width       *float64  `json:"width"`
	Height      *float64  `json:"height"`
	Depth       *float64  `json:"depth"`
	Radius      *float64  `json:"radius"`
	Angle       *float64  `json:"angle"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (CADFeature) TableName() string {
	return "cad_features"
}
