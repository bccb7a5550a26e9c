package handlers

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"garbage-watch/store"
	"garbage-watch/types"
)

// GetReports returns every report, newest first, refreshing the store cache.
func GetReports(c *gin.Context, st *store.Store) {
	reports, err := st.FetchAll(c.Request.Context())
	if err != nil {
		log.Printf("ERROR fetching reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve reports",
		})
		return
	}

	if reports == nil {
		reports = []types.Report{}
	}

	c.JSON(http.StatusOK, reports)
}

// GetReport returns a single report by ID.
func GetReport(c *gin.Context, st *store.Store) {
	id := c.Param("id")

	report, err := st.Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("ERROR fetching report %s: %v", id, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetReportsByDevice returns one device's submissions from the cache.
func GetReportsByDevice(c *gin.Context, st *store.Store) {
	deviceID := c.Param("deviceId")

	reports := st.ByDevice(deviceID)
	if reports == nil {
		reports = []types.Report{}
	}

	c.JSON(http.StatusOK, reports)
}

// CreateReport accepts a multipart submission: an image file plus location
// and description fields. The new report always starts out Pending.
func CreateReport(c *gin.Context, st *store.Store) {
	lat, err := strconv.ParseFloat(c.PostForm("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
		return
	}
	lng, err := strconv.ParseFloat(c.PostForm("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid longitude"})
		return
	}
	if err := types.ValidateCoordinates(lat, lng); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deviceID := c.PostForm("deviceId")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deviceId is required"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Report image is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open image"})
		return
	}
	defer file.Close()
	imageBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}

	input := types.ReportInput{
		Lat:         lat,
		Lng:         lng,
		Address:     c.PostForm("address"),
		Description: c.PostForm("description"),
		SubmittedBy: c.PostForm("submittedBy"),
		DeviceID:    deviceID,
		Image:       imageBytes,
	}

	id, err := st.Create(c.Request.Context(), input)
	if err != nil {
		log.Printf("ERROR creating report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateReportStatus moves a report to any of the three statuses. There is
// no transition graph; resolved reports may be reopened.
func UpdateReportStatus(c *gin.Context, st *store.Store) {
	id := c.Param("id")

	var request struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newStatus, err := types.ParseStatus(request.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := st.UpdateStatus(c.Request.Context(), id, newStatus); err != nil {
		log.Printf("ERROR updating status for report %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": newStatus})
}
