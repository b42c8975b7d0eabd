package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"go-lifeline/handlers"
	"go-lifeline/workflow"
)

func SetupRouter(firestoreClient *firestore.Client, pipeline *workflow.Pipeline) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Go Lifeline!",
		})
	})

	// api routes
	api := r.Group("/api/lifeline")
	{
		api.POST("/help", func(c *gin.Context) {
			handlers.SubmitHelpRequest(c, pipeline)
		})
		api.DELETE("/tasks/:id", func(c *gin.Context) {
			handlers.DeleteTask(c, pipeline)
		})
		api.POST("/resources", func(c *gin.Context) {
			handlers.AddResource(c, firestoreClient)
		})
		api.PATCH("/resources/:id/availability", func(c *gin.Context) {
			handlers.UpdateResourceAvailability(c, firestoreClient)
		})
		api.DELETE("/resources/:id", func(c *gin.Context) {
			handlers.DeleteResource(c, firestoreClient)
		})
		api.PATCH("/disasters/:id/status", func(c *gin.Context) {
			handlers.UpdateDisasterStatus(c, firestoreClient)
		})
	}

	return r
}
