package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/username/fiscal-calendar/internal/fiscal"
	"github.com/username/fiscal-calendar/pkg/dateutil"
)

// maxBatchSize caps one conversion request
const maxBatchSize = 10000

// Handler handles fiscal conversion HTTP requests
type Handler struct {
	converter *fiscal.Converter
	logger    *zap.Logger
}

// NewHandler creates a new conversion handler
func NewHandler(converter *fiscal.Converter, logger *zap.Logger) *Handler {
	return &Handler{
		converter: converter,
		logger:    logger.Named("handler"),
	}
}

// ConvertRequest is the POST /api/v1/convert payload
type ConvertRequest struct {
	Values []string `json:"values"`
	From   string   `json:"from"`
	To     string   `json:"to"`
}

// ConvertResult is the data portion of a successful conversion response
type ConvertResult struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Count   int      `json:"count"`
	Results []string `json:"results"`
}

// HandleHealth handles GET /health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleConvert handles POST /api/v1/convert
func (h *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	var request ConvertRequest

	// Parse request body
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.convert(w, request)
}

// HandleConvertQuery handles GET /api/v1/convert
func (h *Handler) HandleConvertQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	request := ConvertRequest{
		Values: q["value"],
		From:   q.Get("from"),
		To:     q.Get("to"),
	}

	h.convert(w, request)
}

// convert runs one validated conversion batch and writes the response
func (h *Handler) convert(w http.ResponseWriter, request ConvertRequest) {
	if len(request.Values) == 0 {
		h.writeError(w, http.StatusBadRequest, codeBadRequest, "no values provided")
		return
	}
	if len(request.Values) > maxBatchSize {
		h.writeError(w, http.StatusBadRequest, codeBadRequest,
			fmt.Sprintf("too many values (max %d)", maxBatchSize))
		return
	}

	from, err := fiscal.ParseFrom(request.From)
	if err != nil {
		h.writeError(w, statusForError(err), errorCode(err), err.Error())
		return
	}
	to, err := fiscal.ParseTo(request.To)
	if err != nil {
		h.writeError(w, statusForError(err), errorCode(err), err.Error())
		return
	}

	startTime := time.Now()
	results, err := h.converter.ConvertAll(request.Values, from, to)
	elapsed := time.Since(startTime)

	if err != nil {
		h.writeError(w, statusForError(err), errorCode(err), err.Error())
		return
	}

	h.logger.Info("Conversion completed",
		zap.Int("count", len(results)),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Duration("elapsed", elapsed))

	h.writeJSON(w, http.StatusOK, ConvertResult{
		From:    string(from),
		To:      string(to),
		Count:   len(results),
		Results: results,
	})
}

// HandleYears handles GET /api/v1/years
func (h *Handler) HandleYears(w http.ResponseWriter, r *http.Request) {
	table := h.converter.Table()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"years":    table.Info(),
		"min_date": dateutil.FormatDate(table.MinDate()),
		"max_date": dateutil.FormatDate(table.MaxDate()),
	})
}
