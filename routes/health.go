package routes

import (
	"net/http"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/store"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	maxDiagnosticCollections = 10
	maxDiagnosticErrorLen    = 50
)

// SetupHealthRoutes registers the liveness and diagnostics endpoints.
func SetupHealthRoutes(router *gin.Engine, cfg *config.Config, st store.Store) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Portfolio Backend Running"})
	})

	// Diagnostics never fail; store problems only change the status text.
	router.GET("/test", func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if st != nil {
			response["database"] = "✅ Available"
			if cfg.MongoURI != "" {
				response["database_url"] = "✅ Set"
			} else {
				response["database_url"] = "❌ Not Set"
			}
			response["database_name"] = st.Name()
			response["connection_status"] = "Connected"

			names, err := st.CollectionNames(c.Request.Context())
			if err != nil {
				response["database"] = "⚠️  Connected but Error: " + utils.TruncateRunes(err.Error(), maxDiagnosticErrorLen)
			} else {
				if len(names) > maxDiagnosticCollections {
					names = names[:maxDiagnosticCollections]
				}
				response["collections"] = names
				response["database"] = "✅ Connected & Working"
			}
		}

		c.JSON(http.StatusOK, response)
	})
}
