package httpapi

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/services/lottery"
	"github.com/gin-gonic/gin"
)

type uploadRequest struct {
	Data []models.Person `json:"data"`
}

// GetRoster returns the tenant's roster
func (h *Handler) GetRoster(c *gin.Context) {
	output, err := h.service.GetRoster(c.Request.Context(), &lottery.GetRosterInput{
		TenantID: tenantID(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, "", output.People)
}

// UploadRoster replaces the roster from a JSON body or a CSV file upload
func (h *Handler) UploadRoster(c *gin.Context) {
	var (
		people []models.Person
		err    error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		people, err = readRosterCSV(c)
	} else {
		var req uploadRequest
		err = c.ShouldBindJSON(&req)
		people = req.Data
	}
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	output, err := h.service.ReplaceRoster(c.Request.Context(), &lottery.ReplaceRosterInput{
		TenantID: tenantID(c),
		People:   people,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, fmt.Sprintf("saved %d records", output.Count), gin.H{"count": output.Count})
}

// readRosterCSV reads id,name[,seat] rows from the "file" form field. A
// leading header row is skipped.
func readRosterCSV(c *gin.Context) ([]models.Person, error) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("error retrieving file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var people []models.Person
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "id") {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: expected id,name[,seat]", line)
		}

		person := models.Person{
			ID:   strings.TrimSpace(record[0]),
			Name: strings.TrimSpace(record[1]),
		}
		if len(record) > 2 {
			person.Seat = strings.TrimSpace(record[2])
		}
		people = append(people, person)
	}

	return people, nil
}
