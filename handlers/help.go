package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go-lifeline/workflow"
)

// HelpRequestBody is the citizen-facing submission payload. Coordinates
// arrive as strings and are validated by the pipeline before any stage runs.
type HelpRequestBody struct {
	DisasterID  string `json:"disaster_id" binding:"required"`
	UserID      string `json:"user_id" binding:"required"`
	Help        string `json:"help" binding:"required"`
	UrgencyType string `json:"urgency_type"`
	Latitude    string `json:"latitude" binding:"required"`
	Longitude   string `json:"longitude" binding:"required"`
}

// SubmitHelpRequest runs the task-generation pipeline for a submitted help
// request and returns the generated task plus the recorded request.
func SubmitHelpRequest(c *gin.Context, pipeline *workflow.Pipeline) {
	var body HelpRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := pipeline.Process(
		c.Request.Context(),
		body.DisasterID,
		body.UserID,
		body.Help,
		body.UrgencyType,
		body.Latitude,
		body.Longitude,
	)
	if err != nil {
		if errors.Is(err, workflow.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":             state.GeneratedTask,
		"request":          state.UserRequest,
		"nearby_resources": state.NearbyResources,
		"warnings":         state.Warnings,
	})
}

// DeleteTask removes a task directly by ID. Administrative cleanup only.
func DeleteTask(c *gin.Context, pipeline *workflow.Pipeline) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task id is required"})
		return
	}

	if err := pipeline.AdminDeleteTask(c.Request.Context(), taskID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task " + taskID + " deleted successfully"})
}
