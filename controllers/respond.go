package controllers

import (
	"errors"
	"net/http"

	"laundryhub-backend/cart"
	"laundryhub-backend/logger"
	"laundryhub-backend/repository"
	"laundryhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondWithFailure turns any error from the layers below into a notice.
func respondWithFailure(c *gin.Context, err error) {
	var verr *utils.ValidationError
	var perr *repository.PersistenceError

	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"title": "Invalid input",
			"error": verr.Message,
			"field": verr.Field,
		})
	case errors.Is(err, utils.ErrAuthRequired):
		utils.RespondAuthRequired(c)
	case errors.Is(err, cart.ErrEmptyCart):
		utils.RespondWithNotice(c, http.StatusUnprocessableEntity,
			"Cart is empty", "Please add items to your cart before checking out.")
	case errors.As(err, &perr):
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, repository.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, repository.ErrDuplicate):
			status = http.StatusConflict
		default:
			logger.Get().Error("persistence failure", "op", perr.Op, "error", perr.Err)
		}
		utils.RespondWithNotice(c, status, "Error", perr.Message)
	default:
		logger.Get().Error("unexpected failure", "path", c.Request.URL.Path, "error", err)
		utils.RespondWithNotice(c, http.StatusInternalServerError,
			"Error", "An unexpected error occurred. Please try again.")
	}
}
