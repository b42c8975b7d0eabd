package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"go-lifeline/db"
	"go-lifeline/types"
)

// UpdateDisasterStatus moves a disaster between its lifecycle states
// (not_active, active, recovery), e.g. when an operator accepts a reported
// incident.
func UpdateDisasterStatus(c *gin.Context, client *firestore.Client) {
	disasterID := c.Param("id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newStatus, err := types.ParseDisasterStatus(body.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.UpdateDisasterStatus(c.Request.Context(), client, disasterID, newStatus); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Disaster " + disasterID + " marked as " + string(newStatus),
	})
}
