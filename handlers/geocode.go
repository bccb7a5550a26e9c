package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"garbage-watch/geocode"
	"garbage-watch/types"
)

// ReverseGeocode resolves ?lat=&lng= to a human-readable address used to
// prefill the report form's location label.
func ReverseGeocode(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid longitude"})
		return
	}
	if err := types.ValidateCoordinates(lat, lng); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := geocode.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		log.Printf("ERROR reverse geocoding (%v, %v): %v", lat, lng, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve address"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address})
}

// GeocodeAddress resolves ?address= to coordinates for manual entry.
func GeocodeAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	results, err := geocode.GeocodeAddress(c.Request.Context(), address)
	if err != nil {
		log.Printf("ERROR geocoding %q: %v", address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to geocode address"})
		return
	}
	if len(results) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results for address"})
		return
	}

	loc := results[0].Geometry.Location
	c.JSON(http.StatusOK, gin.H{
		"formattedAddress": results[0].FormattedAddress,
		"lat":              loc.Lat,
		"lng":              loc.Lng,
	})
}
