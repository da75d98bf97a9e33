package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"telecom-catalog/internal/domain"
	offersvc "telecom-catalog/internal/service/offer"
)

type offerHandlers struct {
	svc *offersvc.Service
}

func (h *offerHandlers) list(c *gin.Context) {
	offers, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if offers == nil {
		offers = []domain.Offer{}
	}
	c.JSON(http.StatusOK, offers)
}

func (h *offerHandlers) listByType(c *gin.Context) {
	offers, err := h.svc.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	if offers == nil {
		offers = []domain.Offer{}
	}
	c.JSON(http.StatusOK, offers)
}

func (h *offerHandlers) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	offer, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *offerHandlers) create(c *gin.Context) {
	var in domain.Offer
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid offer payload"})
		return
	}
	created, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *offerHandlers) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in domain.Offer
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid offer payload"})
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *offerHandlers) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
