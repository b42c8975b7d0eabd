package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"go-lifeline/db"
	"go-lifeline/types"
)

type resourceBody struct {
	DisasterID  string `json:"disaster_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	Status      string `json:"status"`
}

// AddResource registers an aid point against a disaster.
func AddResource(c *gin.Context, client *firestore.Client) {
	var body resourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource := types.Resource{
		DisasterID:  body.DisasterID,
		Name:        body.Name,
		Type:        body.Type,
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
		Description: body.Description,
		Contact:     body.Contact,
		Status:      body.Status,
	}

	resourceID, err := db.SaveResource(c.Request.Context(), client, resource)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Resource added successfully",
		"resource_id": resourceID,
	})
}

// UpdateResourceAvailability flips the status field of a resource.
func UpdateResourceAvailability(c *gin.Context, client *firestore.Client) {
	resourceID := c.Param("id")

	var body struct {
		Availability string `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.UpdateResourceStatus(c.Request.Context(), client, resourceID, body.Availability); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Resource " + resourceID + " availability updated to " + body.Availability,
	})
}

// DeleteResource removes an aid point that is no longer operating.
func DeleteResource(c *gin.Context, client *firestore.Client) {
	resourceID := c.Param("id")
	if resourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resource id is required"})
		return
	}

	if err := db.DeleteResource(c.Request.Context(), client, resourceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resource " + resourceID + " deleted successfully"})
}
