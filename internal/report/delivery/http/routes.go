package http

import (
	"report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	logRequest := middleware.LogRequest(h.l)

	api := r.Group("/api/v1")
	api.Use(mw.OptionalAuth())
	{
		reports := api.Group("/reports")
		reports.GET("", h.ListDefinitions)
		reports.GET("/:report_id", middleware.Compose(h.Render, logRequest))
		reports.POST("/:report_id/preview", middleware.Compose(h.Preview, logRequest, middleware.NoStore()))
		reports.GET("/:report_id/parameters", mw.Auth(), middleware.Compose(h.LastParameters, middleware.NoStore()))

		archives := api.Group("/archives")
		archives.POST("", middleware.Compose(h.SaveAs, logRequest))
		archives.GET("", h.ListArchives)
		archives.GET("/:key", h.GetArchive)
		archives.GET("/:key/render", middleware.Compose(h.RenderArchive, logRequest))
		archives.GET("/:key/download", h.DownloadArchive)
	}
}
