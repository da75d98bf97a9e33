package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"telecom-catalog/internal/domain"
)

// writeError maps domain failures onto transport status codes. Typed
// not-found and invalid-offer failures keep their message; everything else
// is a generic 500 so store errors never leak to clients.
func writeError(c *gin.Context, err error) {
	var nf *domain.NotFoundError
	var inv *domain.InvalidOfferError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"message": nf.Error()})
	case errors.As(err, &inv):
		c.JSON(http.StatusBadRequest, gin.H{"message": inv.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return 0, false
	}
	return id, true
}
