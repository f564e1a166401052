package model

import (
	"path/filepath"
	"time"
)

// CADFile is an uploaded design file. Parsed flips to true once features have been
// generated for it and is never reset.
type CADFile struct {
	ID             int       `json:"id"`
	Filename       string    `json:"filename"`
	FilePath       string    `json:"filePath"`
	UploadDate     time.Time `json:"uploadDate"`
	FileSize       int64     `json:"fileSize"`
	FileFormat     string    `json:"fileFormat"`
	Parsed         bool      `json:"parsed"`
	ParsedDataPath *string   `json:"parsedDataPath"`
}

func (CADFile) TableName() string {
	return "cad_files"
}

// StoredName is the name the file was written under in the upload directory.
func (f CADFile) StoredName() string {
	return filepath.Base(f.FilePath)
}
