package routes

import (
	"net/http"

	"virasat/middleware"
	"virasat/ratelim"
	"virasat/sites"

	"github.com/julienschmidt/httprouter"
)

func AddSiteRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/sites", middleware.Authenticate(sites.GetSites))
	router.GET("/api/sites/:siteid", middleware.Authenticate(sites.GetSiteDetail))
	router.POST("/api/sites", rateLimiter.Limit(middleware.Authenticate(sites.CreateSite)))
	router.PUT("/api/sites/:siteid", rateLimiter.Limit(middleware.Authenticate(sites.UpdateSite)))
	router.DELETE("/api/sites/:siteid", rateLimiter.Limit(middleware.Authenticate(sites.DeleteSite)))

	router.GET("/api/sites/:siteid/qr", sites.SiteQR)
	router.GET("/api/sites/:siteid/export", middleware.Authenticate(sites.ExportSitePDF))
	router.POST("/api/sites/:siteid/media", rateLimiter.Limit(middleware.Authenticate(sites.UploadSiteMedia)))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("./static/uploads"))
}
