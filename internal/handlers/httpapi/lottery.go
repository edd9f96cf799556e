package httpapi

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"slices"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/services/lottery"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const exportTimeLayout = "2006-01-02 15:04:05"

type drawRequest struct {
	PrizeID string `json:"prizeId"`
	Count   int    `json:"count"`
}

type invalidateRequest struct {
	ID string `json:"id"`
}

// Draw picks winners for a named prize, or for a random prize with stock
func (h *Handler) Draw(c *gin.Context) {
	var req drawRequest
	// An empty body is a draw of one from a random prize
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(c, err.Error())
		return
	}

	output, err := h.service.Draw(c.Request.Context(), &lottery.DrawInput{
		TenantID: tenantID(c),
		PrizeID:  req.PrizeID,
		Count:    req.Count,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, "", gin.H{
		"prize":   output.Prize,
		"winners": output.Winners,
	})
}

// Invalidate voids one win record
func (h *Handler) Invalidate(c *gin.Context) {
	var req invalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	output, err := h.service.Invalidate(c.Request.Context(), &lottery.InvalidateInput{
		TenantID: tenantID(c),
		RecordID: req.ID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, "record invalidated", gin.H{
		"record": output.Record,
		"prize":  output.Prize,
	})
}

// ResetWinners clears every win and refills every prize
func (h *Handler) ResetWinners(c *gin.Context) {
	output, err := h.service.ResetWinners(c.Request.Context(), &lottery.ResetWinnersInput{
		TenantID: tenantID(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, "winners reset", gin.H{"cleared": output.Cleared})
}

// ListWinners returns the win records in draw order
func (h *Handler) ListWinners(c *gin.Context) {
	output, err := h.service.ListWinners(c.Request.Context(), &lottery.ListWinnersInput{
		TenantID: tenantID(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, "", output.Winners)
}

// ExportWinners streams the win records as CSV. The seat column is only
// present when at least one winner has a seat.
func (h *Handler) ExportWinners(c *gin.Context) {
	output, err := h.service.ListWinners(c.Request.Context(), &lottery.ListWinnersInput{
		TenantID: tenantID(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	withSeat := slices.ContainsFunc(output.Winners, func(w models.WinRecord) bool {
		return w.WinnerSeat != ""
	})

	header := []string{"ID", "Name"}
	if withSeat {
		header = append(header, "Seat")
	}
	header = append(header, "Prize Level", "Prize", "Win Time")

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=winners.csv")
	c.Status(http.StatusOK)

	rows := make([][]string, 0, len(output.Winners)+1)
	rows = append(rows, header)
	for _, record := range output.Winners {
		row := []string{record.WinnerID, record.WinnerName}
		if withSeat {
			row = append(row, record.WinnerSeat)
		}
		row = append(row,
			record.PrizeLevelLabel,
			record.PrizeName,
			record.WinTime.UTC().Format(exportTimeLayout),
		)
		rows = append(rows, row)
	}

	// Headers are already sent, so a failed write can only be logged
	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(rows); err != nil {
		h.logger.Error("failed to write winners export",
			zap.String("tenant_id", tenantID(c)),
			zap.Int("rows", len(rows)),
			zap.Error(err))
	}
}
