package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-mvmapper/docs"
	"go-mvmapper/internal/api/handler"
	"go-mvmapper/pkg/router"
)

// RegisterRoutes wires the export API onto the router.
func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/exports", handler.CreateExport)
	r.GET("/api/v1/exports", handler.ListExports)
	// More specific routes first
	r.GET("/api/v1/exports/*/errors", handler.GetExportErrors)
	r.GET("/api/v1/exports/*", handler.GetExport)
	r.GET("/api/v1/download/*/*", handler.DownloadFile)
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
