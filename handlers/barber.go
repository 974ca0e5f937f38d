package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	barberRepo "trimly/database/repository/barber"
	"trimly/models"
	"trimly/utils"
)

// ListBarbers returns the active barbers, optionally scoped to a branch.
func ListBarbers(repo barberRepo.BarberRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		barbers, err := repo.List(c.Request.Context(), c.Query("branchId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": barbers})
	}
}

// CreateBarber registers a barber in the directory.
func CreateBarber(repo barberRepo.BarberRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name" binding:"required"`
			BranchID string `json:"branchId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		barber := &models.Barber{
			Name:     req.Name,
			BranchID: req.BranchID,
			Active:   true,
		}
		if err := repo.Create(c.Request.Context(), barber); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": barber})
	}
}
