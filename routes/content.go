package routes

import (
	"net/http"
	"sort"
	"time"

	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/store"
	"portfolio-backend/middleware"
	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
)

// SetupContentRoutes registers the list/create endpoints for each content
// type. All of them are public; content is create-then-immutable.
func SetupContentRoutes(router *gin.Engine, st store.Store) {
	router.GET("/blog", handleListContent(st, store.CollectionBlogPosts, sortNewestFirst))
	router.POST("/blog", handleCreateBlogPost(st))

	router.GET("/case-studies", handleListContent(st, store.CollectionCaseStudies, sortNewestFirst))
	router.POST("/case-studies", handleCreateCaseStudy(st))

	router.GET("/projects", handleListContent(st, store.CollectionProjects, sortFeaturedFirst))
	router.POST("/projects", handleCreateProject(st))
}

func handleListContent(st store.Store, collection string, sortItems func([]map[string]interface{})) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			utils.RespondWithInternalError(c, "Document store is not configured")
			return
		}

		docs, err := st.FindAll(c.Request.Context(), collection)
		if err != nil {
			logger.Error("listing failed", "collection", collection, "request_id", middleware.GetRequestID(c), "error", err)
			utils.RespondWithInternalError(c, "Failed to list documents")
			return
		}

		items := make([]map[string]interface{}, 0, len(docs))
		for _, doc := range docs {
			items = append(items, store.Serialize(doc))
		}
		sortItems(items)

		c.JSON(http.StatusOK, items)
	}
}

func handleCreateBlogPost(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.BlogPost
		if !bindBody(c, &post) {
			return
		}
		if err := post.Validate(); err != nil {
			utils.RespondWithValidationError(c, models.ValidationDetails(err))
			return
		}
		post.Defaults()
		post.CreatedAt = time.Now().UTC()

		insertDocument(c, st, store.CollectionBlogPosts, post)
	}
}

func handleCreateCaseStudy(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cs models.CaseStudy
		if !bindBody(c, &cs) {
			return
		}
		if err := cs.Validate(); err != nil {
			utils.RespondWithValidationError(c, models.ValidationDetails(err))
			return
		}
		cs.Defaults()
		cs.CreatedAt = time.Now().UTC()

		insertDocument(c, st, store.CollectionCaseStudies, cs)
	}
}

func handleCreateProject(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var proj models.Project
		if !bindBody(c, &proj) {
			return
		}
		if err := proj.Validate(); err != nil {
			utils.RespondWithValidationError(c, models.ValidationDetails(err))
			return
		}
		proj.Defaults()
		proj.CreatedAt = time.Now().UTC()

		insertDocument(c, st, store.CollectionProjects, proj)
	}
}

func bindBody(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		utils.RespondWithValidationError(c, gin.H{"body": err.Error()})
		return false
	}
	return true
}

func insertDocument(c *gin.Context, st store.Store, collection string, doc interface{}) {
	if st == nil {
		utils.RespondWithInternalError(c, "Document store is not configured")
		return
	}

	id, err := st.InsertOne(c.Request.Context(), collection, doc)
	if err != nil {
		logger.Error("insert failed", "collection", collection, "request_id", middleware.GetRequestID(c), "error", err)
		utils.RespondWithInternalError(c, "Failed to create document")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// sortNewestFirst orders by descending creation timestamp. The comparison is
// on the serialized timestamp string; documents without one sort last.
func sortNewestFirst(items []map[string]interface{}) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]) > createdAt(items[j])
	})
}

// sortFeaturedFirst puts featured projects ahead of the rest, ascending by
// creation timestamp within each group.
func sortFeaturedFirst(items []map[string]interface{}) {
	sort.SliceStable(items, func(i, j int) bool {
		fi, fj := isFeatured(items[i]), isFeatured(items[j])
		if fi != fj {
			return fi
		}
		return createdAt(items[i]) < createdAt(items[j])
	})
}

func createdAt(item map[string]interface{}) string {
	s, _ := item["created_at"].(string)
	return s
}

func isFeatured(item map[string]interface{}) bool {
	b, _ := item["featured"].(bool)
	return b
}
