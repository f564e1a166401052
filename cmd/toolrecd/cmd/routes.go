package cmd

import (
	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/extract"
	"github.com/neurmill/toolrec/pkg/intake"
	"github.com/neurmill/toolrec/pkg/recommend"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
	"github.com/neurmill/toolrec/pkg/toolrecd/webapi"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouteOpts struct {
	stors     *stor.Stors
	uploadDir *intake.UploadDir
	extractor extract.FeatureExtractor
	ranker    recommend.ToolRanker
	ping      func() error
	logLevel  string
	logDir    string
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	e.Use(webapi.RequestLogger())

	healthController := webapi.NewHealthController(opts.ping, opts.extractor)
	e.GET("/health", healthController.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cadFileController := webapi.NewCADFileController(opts.stors.CADFileStor, opts.uploadDir)
	e.GET("/cad-files", cadFileController.ListCADFiles)
	e.GET("/cad-files/:id", cadFileController.GetCADFile)
	e.POST("/cad-files", cadFileController.UploadCADFile)

	featureController := webapi.NewFeatureController(opts.stors.CADFileStor, opts.stors.CADFeatureStor, opts.extractor)
	e.GET("/cad-files/:id/features", featureController.GetFeatures)

	machineController := webapi.NewMachineController(opts.stors.MachineStor)
	e.GET("/machines", machineController.ListMachines)
	e.GET("/machines/:id", machineController.GetMachine)

	toolController := webapi.NewToolController(opts.stors.ToolStor)
	e.GET("/tools", toolController.ListTools)
	e.GET("/tools/:id", toolController.GetTool)

	recommendationController := webapi.NewRecommendationController(opts.stors, opts.ranker)
	e.POST("/recommendations", recommendationController.CreateRecommendations)
	e.POST("/recommendations/:id/feedback", recommendationController.SubmitFeedback)

	setupAdminRoutes(e, opts)
}

func setupAdminRoutes(e *echo.Echo, opts RouteOpts) {
	g := e.Group("/admin")

	logController := webapi.NewLogController(opts.logLevel, opts.logDir)
	g.GET("/logging", logController.ShowLogging)
	g.POST("/logging/level", logController.SetLogLevel)
	g.POST("/logging/output", logController.SetLogOutput)
}
