package httpapi

import (
	"fmt"

	"github.com/KirkDiggler/prizedraw/internal/services/lottery"
	"github.com/gin-gonic/gin"
)

type upsertPrizeRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Level      string `json:"level"`
	LevelLabel string `json:"levelLabel"`
}

// ListPrizes returns the tenant's prizes
func (h *Handler) ListPrizes(c *gin.Context) {
	output, err := h.service.ListPrizes(c.Request.Context(), &lottery.ListPrizesInput{
		TenantID: tenantID(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, "", output.Prizes)
}

// UpsertPrize creates a prize, or updates it when the body carries a known id
func (h *Handler) UpsertPrize(c *gin.Context) {
	var req upsertPrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	output, err := h.service.UpsertPrize(c.Request.Context(), &lottery.UpsertPrizeInput{
		TenantID:   tenantID(c),
		ID:         req.ID,
		Name:       req.Name,
		Count:      req.Count,
		Level:      req.Level,
		LevelLabel: req.LevelLabel,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	message := "prize updated"
	if output.Created {
		message = "prize created"
	}
	h.ok(c, message, output.Prize)
}

// DeletePrize removes one prize
func (h *Handler) DeletePrize(c *gin.Context) {
	prizeID := c.Param("id")
	output, err := h.service.DeletePrize(c.Request.Context(), &lottery.DeletePrizeInput{
		TenantID: tenantID(c),
		PrizeID:  prizeID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	message := "prize deleted"
	if !output.Deleted {
		message = fmt.Sprintf("no prize with id %s", prizeID)
	}
	h.ok(c, message, gin.H{"deleted": output.Deleted})
}

// ClearPrizes empties the prize list
func (h *Handler) ClearPrizes(c *gin.Context) {
	output, err := h.service.ClearPrizes(c.Request.Context(), &lottery.ClearPrizesInput{
		TenantID: tenantID(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, "prizes cleared", gin.H{"removed": output.Removed})
}
