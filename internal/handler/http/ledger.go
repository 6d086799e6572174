package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
	"github.com/cmlabs-hris/attendance-insight-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-insight-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LedgerHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{
		ledgerService: ledgerService,
	}
}

// Process implements LedgerHandler.
func (h *ledgerHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req ledger.ProcessRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode process request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.ledgerService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ledger processed", result)
}

// Get implements LedgerHandler.
func (h *ledgerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	snapshotID := chi.URLParam(r, "snapshotID")

	filter, err := parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.ledgerService.GetLedger(r.Context(), snapshotID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements LedgerHandler.
func (h *ledgerHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	snapshotID := chi.URLParam(r, "snapshotID")

	filter, err := parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.ledgerService.Summary(r.Context(), snapshotID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parseFilter reads the slicer query parameters. List parameters accept
// both repetition (?year=2025&year=2026) and comma-separated values.
func parseFilter(r *http.Request) (ledger.Filter, error) {
	query := r.URL.Query()
	var filter ledger.Filter
	var err error

	filter.Years, err = parseIntList(query["year"])
	if err != nil {
		return ledger.Filter{}, badFilterValue("year")
	}

	filter.Months, err = parseIntList(query["month"])
	if err != nil {
		return ledger.Filter{}, badFilterValue("month")
	}

	if raw := query.Get("week_from"); raw != "" {
		filter.WeekFrom, err = strconv.Atoi(raw)
		if err != nil {
			return ledger.Filter{}, badFilterValue("week_from")
		}
	}

	if raw := query.Get("week_to"); raw != "" {
		filter.WeekTo, err = strconv.Atoi(raw)
		if err != nil {
			return ledger.Filter{}, badFilterValue("week_to")
		}
	}

	for _, value := range query["employee"] {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				filter.Employees = append(filter.Employees, name)
			}
		}
	}

	return filter, nil
}

func badFilterValue(field string) error {
	return validator.ValidationErrors{{
		Field:   field,
		Message: field + " must be numeric",
	}}
}

func parseIntList(values []string) ([]int, error) {
	var result []int
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, err
			}
			result = append(result, n)
		}
	}
	return result, nil
}
