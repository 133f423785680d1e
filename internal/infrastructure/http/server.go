package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"stockmon-service/internal/application"
	"stockmon-service/internal/domain"
)

type Server struct {
	svc *application.MonitorService
}

func NewServer(svc *application.MonitorService) *Server { return &Server{svc: svc} }

type startMonitoringRequest struct {
	Symbol  string `json:"symbol"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
}

type refreshRequest struct {
	Symbol string `json:"symbol"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type errorDetailsResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type quoteResponse struct {
	Symbol        string    `json:"symbol"`
	Open          *float64  `json:"open"`
	High          *float64  `json:"high"`
	Low           *float64  `json:"low"`
	Current       *float64  `json:"current"`
	PreviousClose *float64  `json:"previousClose"`
	Timestamp     time.Time `json:"timestamp"`
}

func toQuoteResponse(rec domain.QuoteRecord) quoteResponse {
	return quoteResponse{
		Symbol:        string(rec.Symbol),
		Open:          rec.Open,
		High:          rec.High,
		Low:           rec.Low,
		Current:       rec.Current,
		PreviousClose: rec.PreviousClose,
		Timestamp:     rec.Timestamp,
	}
}

func (s *Server) StartMonitoring(w http.ResponseWriter, r *http.Request) {
	var body startMonitoringRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	msg, err := s.svc.StartMonitoring(body.Symbol, body.Minutes, body.Seconds)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (s *Server) History(w http.ResponseWriter, r *http.Request) {
	recs, err := s.svc.History(r.URL.Query().Get("symbol"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]quoteResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toQuoteResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	rec, err := s.svc.Refresh(r.Context(), body.Symbol)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteResponse(rec))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps domain errors onto the HTTP error envelope:
// validation failures are the caller's fault, upstream failures are not.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}
	var uerr *domain.UpstreamError
	if errors.As(err, &uerr) {
		writeJSON(w, http.StatusInternalServerError, errorDetailsResponse{
			Error:   "upstream quote fetch failed",
			Details: uerr.Error(),
		})
		return
	}
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
