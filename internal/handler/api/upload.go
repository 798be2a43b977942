package api

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"

	"bundlestay/internal/handler/httperr"
	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	ingestCommands commands.IngestCommands
}

func NewUploadHandler(ingestCommands commands.IngestCommands) *UploadHandler {
	return &UploadHandler{
		ingestCommands: ingestCommands,
	}
}

// @Summary Bulk upload
// @Description Upload a CSV of users, packages, bookings or itinerary bookings
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param datatype formData string true "One of Users, Packages, Bookings, ItineraryBookings"
// @Param file formData file true "CSV file with a header row"
// @Success 200 {object} commands.Report
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	datatype := commands.Datatype(c.PostForm("datatype"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "CSV file required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Could not open uploaded file", nil)
		return
	}
	defer file.Close()

	rows, err := parseCSVRows(file)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed CSV", nil)
		return
	}

	report, err := h.ingestCommands.Run(c.Request.Context(), datatype, rows)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnknownDatatype):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown datatype", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// parseCSVRows reads a header row then maps each record by column name.
// Short records leave trailing columns empty rather than failing the file.
func parseCSVRows(r io.Reader) ([]commands.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	var rows []commands.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(commands.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
