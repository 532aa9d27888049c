package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"card_transfer/internal/domain"     // Importing domain models
	"card_transfer/internal/middleware" // Request ID key
	"card_transfer/internal/service"    // Transfer and reporting services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RegisterRoutes mounts the transaction endpoints on r
func RegisterRoutes(r gin.IRoutes, transfers service.TransferService, reporter service.Reporter) {
	r.GET("/transactions/top-users", TopUsersHandler(reporter)) // Leaderboard endpoint
	r.POST("/transactions", TransferHandler(transfers))         // Transfer endpoint
}

// TransferHandler moves money from the source card to the destination card
func TransferHandler(transfers service.TransferService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.TransferRequest // Bind JSON or form request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tx, err := transfers.Transfer(c.Request.Context(), req) // Run the transfer
		if err != nil {
			writeTransferError(c, err)
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Transfer successful", "transaction_id": tx.ID})
	}
}

// writeTransferError maps transfer failures to responses
func writeTransferError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	var nf *domain.CardNotFoundError
	switch {
	case errors.As(err, &verr):
		// Field level validation errors
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
	case errors.As(err, &nf):
		// Unknown source or destination card
		msg := "Source card not found"
		if nf.Field == "destination" {
			msg = "Destination card not found"
		}
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	case errors.Is(err, domain.ErrInsufficientFunds):
		// Balance does not cover amount plus fee
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient funds"})
	default:
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey), // Request ID
			"error":      err.Error(),                          // Error message
		}).Error("Transfer failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transfer failed"})
	}
}

// TopUsersHandler returns the most active users with their recent transactions
func TopUsersHandler(reporter service.Reporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		top, cached, err := reporter.TopUsers(c.Request.Context()) // Compute or load leaderboard
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": c.GetString(middleware.RequestIDKey), // Request ID
				"error":      err.Error(),                          // Error message
			}).Error("Failed to load top users")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load top users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"top_users": top, "cached": cached}) // Return leaderboard
	}
}
