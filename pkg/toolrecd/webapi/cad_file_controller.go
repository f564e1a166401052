package webapi

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/clog"
	"github.com/neurmill/toolrec/pkg/intake"
	"github.com/neurmill/toolrec/pkg/metrics"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
	"github.com/pkg/errors"
)

type CADFileController struct {
	cadFileStor stor.CADFileStor
	uploadDir   *intake.UploadDir
}

func NewCADFileController(cadFileStor stor.CADFileStor, uploadDir *intake.UploadDir) *CADFileController {
	return &CADFileController{cadFileStor: cadFileStor, uploadDir: uploadDir}
}

func (c *CADFileController) ListCADFiles(ctx echo.Context) error {
	files, err := c.cadFileStor.ListCADFiles()
	if err != nil {
		return err
	}

	if files == nil {
		files = []model.CADFile{}
	}

	return ctx.JSON(http.StatusOK, files)
}

func (c *CADFileController) GetCADFile(ctx echo.Context) error {
	fileID, err := intParam(ctx, "id")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid CAD file id")
	}

	file, err := c.cadFileStor.GetCADFileByID(fileID)
	if err != nil {
		return lookupErrorResponse(ctx, err, "CAD file not found")
	}

	return ctx.JSON(http.StatusOK, file)
}

// UploadCADFile stores the multipart field "file" in the upload directory and records it.
// Only .stp and .step files are accepted.
func (c *CADFileController) UploadCADFile(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.StatusRejected).Inc()
		return errorResponse(ctx, http.StatusBadRequest, "No file part in the request")
	}

	format, err := intake.FormatOf(fh.Filename)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.StatusRejected).Inc()
		clog.UsingCtx(clog.IntakeCtx).Infof("Rejected upload %s: %s", fh.Filename, err)
		return errorResponse(ctx, http.StatusBadRequest, "Unsupported file format. Only .stp or .step files are supported.")
	}

	file, err := c.store(fh, format)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.StatusFailed).Inc()
		clog.UsingCtx(clog.IntakeCtx).Errorf("Upload of %s failed: %s", fh.Filename, err)
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to upload file: "+errors.Cause(err).Error())
	}

	metrics.UploadsTotal.WithLabelValues(metrics.StatusOK).Inc()
	clog.UsingCtx(clog.IntakeCtx).Infof("Stored %s as %s, cad file %d (%d bytes)", file.Filename, file.StoredName(), file.ID, file.FileSize)

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"fileId":   file.ID,
		"filename": file.Filename,
		"message":  "File uploaded successfully",
	})
}

// store writes the upload to disk and then records it. If the record can't be created the
// written file is removed so no unreferenced file is left behind.
func (c *CADFileController) store(fh *multipart.FileHeader, format string) (*model.CADFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open upload %s", fh.Filename)
	}
	defer src.Close()

	path, size, err := c.uploadDir.Save(fh.Filename, src)
	if err != nil {
		return nil, err
	}

	file, err := c.cadFileStor.CreateCADFile(&model.CADFile{
		Filename:   filepath.Base(fh.Filename),
		FilePath:   path,
		FileSize:   size,
		FileFormat: format,
		Parsed:     false,
	})

	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	return file, nil
}
