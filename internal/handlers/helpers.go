package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/store"
)

// idParam parses a numeric path parameter. On failure it writes a 400
// response and returns false.
func idParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}

	return uint(id), true
}

// respondError maps the store's error kinds onto transport status
// codes: missing rows are 404, constraint conflicts are 409, shape
// violations are 400 and anything unrecognized is a 500.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrDuplicate), errors.Is(err, store.ErrForeignKey):
		status = http.StatusConflict
	case errors.Is(err, store.ErrInvalid):
		status = http.StatusBadRequest
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
