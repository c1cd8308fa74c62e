// HTTP handlers for the readiness service.
//
// All routes expect an x-user-id header forwarded by the Gateway.
//
// Routes:
//
//	PUT    /profile                        → save profile (whole-record upsert)
//	GET    /profile                        → fetch profile
//	DELETE /profile                        → delete profile
//	GET    /internships                    → active listings (?ranked=true orders by match)
//	GET    /internships/{id}               → listing + cached evaluations
//	POST   /internships/{id}/verify        → run verification, refresh cache
//	GET    /internships/{id}/match         → compute + store skill match
//	POST   /internships/{id}/readiness     → compute + store readiness score
//	POST   /internships/{id}/report        → file a scam report
//	GET    /calendar?semester=             → semester calendar entry + deadlines
//	GET    /calendar/preparation?semester=&month= → apply-window distance
//	GET    /alerts                         → user's alerts (?unread=true)
//	POST   /alerts/{id}/read               → mark alert read
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Harshitasingh-co/VidyaMitra/internal/calendar"
	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// ─── Handler ─────────────────────────────────────────────────────────────────

// Handler adapts Service to net/http.
type Handler struct {
	svc *Service
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts all service routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/profile", h.handleProfile)
	mux.HandleFunc("/internships", h.handleInternships)
	mux.HandleFunc("/internships/", h.handleInternshipAction)
	mux.HandleFunc("/calendar", h.handleCalendar)
	mux.HandleFunc("/calendar/preparation", h.handlePreparation)
	mux.HandleFunc("/alerts", h.handleAlerts)
	mux.HandleFunc("/alerts/", h.handleAlertAction)
}

// ─── Route dispatch ───────────────────────────────────────────────────────────

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodPut:
		h.upsertProfile(w, r, userID)
	case http.MethodGet:
		h.getProfile(w, r, userID)
	case http.MethodDelete:
		h.deleteProfile(w, r, userID)
	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleInternships(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.listInternships(w, r)
}

// handleInternshipAction handles /internships/{id} and /internships/{id}/{action}.
func (h *Handler) handleInternshipAction(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch len(parts) {
	case 2:
		if r.Method != http.MethodGet {
			jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.getInternship(w, r, parts[1])
	case 3:
		listingID, action := parts[1], parts[2]
		switch {
		case action == "verify" && r.Method == http.MethodPost:
			h.verifyInternship(w, r, listingID)
		case action == "match" && r.Method == http.MethodGet:
			h.matchInternship(w, r, listingID)
		case action == "readiness" && r.Method == http.MethodPost:
			h.scoreReadiness(w, r, listingID)
		case action == "report" && r.Method == http.MethodPost:
			h.reportScam(w, r, listingID)
		default:
			jsonError(w, fmt.Sprintf("unknown action %q", action), http.StatusNotFound)
		}
	default:
		jsonError(w, "invalid path", http.StatusNotFound)
	}
}

func (h *Handler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.listAlerts(w, r)
}

// handleAlertAction handles POST /alerts/{id}/read.
func (h *Handler) handleAlertAction(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[2] != "read" || r.Method != http.MethodPost {
		jsonError(w, "invalid path", http.StatusNotFound)
		return
	}
	h.markAlertRead(w, r, parts[1])
}

// ─── Profile handlers ─────────────────────────────────────────────────────────

func (h *Handler) upsertProfile(w http.ResponseWriter, r *http.Request, userID string) {
	var p model.StudentProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	p.UserID = userID

	saved, err := h.svc.UpsertProfile(r.Context(), p)
	if err != nil {
		writeErr(w, "upsertProfile", err)
		return
	}
	jsonOK(w, saved)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request, userID string) {
	p, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		writeErr(w, "getProfile", err)
		return
	}
	jsonOK(w, p)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request, userID string) {
	if err := h.svc.DeleteProfile(r.Context(), userID); err != nil {
		writeErr(w, "deleteProfile", err)
		return
	}
	jsonOK(w, map[string]bool{"deleted": true})
}

// ─── Internship handlers ──────────────────────────────────────────────────────

func (h *Handler) listInternships(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("ranked") == "true" {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		ranked, err := h.svc.RankedListings(r.Context(), userID)
		if err != nil {
			writeErr(w, "rankedListings", err)
			return
		}
		jsonOK(w, ranked)
		return
	}

	listings, err := h.svc.ListListings(r.Context())
	if err != nil {
		writeErr(w, "listListings", err)
		return
	}
	jsonOK(w, listings)
}

func (h *Handler) getInternship(w http.ResponseWriter, r *http.Request, listingID string) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.GetListingDetail(r.Context(), userID, listingID)
	if err != nil {
		writeErr(w, "getListingDetail", err)
		return
	}
	jsonOK(w, detail)
}

func (h *Handler) verifyInternship(w http.ResponseWriter, r *http.Request, listingID string) {
	result, err := h.svc.VerifyListing(r.Context(), listingID)
	if err != nil {
		writeErr(w, "verifyListing", err)
		return
	}
	jsonOK(w, result)
}

func (h *Handler) matchInternship(w http.ResponseWriter, r *http.Request, listingID string) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	sm, err := h.svc.MatchListing(r.Context(), userID, listingID)
	if err != nil {
		writeErr(w, "matchListing", err)
		return
	}
	jsonOK(w, sm)
}

func (h *Handler) scoreReadiness(w http.ResponseWriter, r *http.Request, listingID string) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body struct {
		ResumeStrength *int `json:"resumeStrength"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ResumeStrength == nil {
		jsonError(w, "body must contain resumeStrength", http.StatusBadRequest)
		return
	}

	score, err := h.svc.ScoreReadiness(r.Context(), userID, listingID, *body.ResumeStrength)
	if err != nil {
		writeErr(w, "scoreReadiness", err)
		return
	}
	jsonOK(w, score)
}

func (h *Handler) reportScam(w http.ResponseWriter, r *http.Request, listingID string) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body struct {
		Reason  string  `json:"reason"`
		Details *string `json:"details"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	report, err := h.svc.ReportScam(r.Context(), userID, listingID, body.Reason, body.Details)
	if err != nil {
		writeErr(w, "reportScam", err)
		return
	}
	jsonOK(w, report)
}

// ─── Calendar handlers ────────────────────────────────────────────────────────

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	semester, ok := intQuery(w, r, "semester")
	if !ok {
		return
	}

	entry, err := calendar.ForSemester(semester)
	if err != nil {
		writeErr(w, "calendar", err)
		return
	}
	deadlines, err := calendar.UpcomingDeadlines(semester, time.Now().Month())
	if err != nil {
		writeErr(w, "calendar", err)
		return
	}
	jsonOK(w, map[string]any{"entry": entry, "upcomingDeadlines": deadlines})
}

func (h *Handler) handlePreparation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	semester, ok := intQuery(w, r, "semester")
	if !ok {
		return
	}
	month := int(time.Now().Month())
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			jsonError(w, "month must be an integer", http.StatusBadRequest)
			return
		}
		month = m
	}

	window, err := calendar.PreparationWindow(semester, time.Month(month))
	if err != nil {
		writeErr(w, "preparation", err)
		return
	}
	jsonOK(w, window)
}

// ─── Alert handlers ───────────────────────────────────────────────────────────

func (h *Handler) listAlerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	alerts, err := h.svc.ListAlerts(r.Context(), userID, r.URL.Query().Get("unread") == "true")
	if err != nil {
		writeErr(w, "listAlerts", err)
		return
	}
	jsonOK(w, alerts)
}

func (h *Handler) markAlertRead(w http.ResponseWriter, r *http.Request, alertID string) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	a, err := h.svc.MarkAlertRead(r.Context(), userID, alertID)
	if err != nil {
		writeErr(w, "markAlertRead", err)
		return
	}
	jsonOK(w, a)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("x-user-id")
	if userID == "" {
		jsonError(w, "missing x-user-id header", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func intQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		jsonError(w, fmt.Sprintf("missing %s query parameter", name), http.StatusBadRequest)
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		jsonError(w, fmt.Sprintf("%s must be an integer", name), http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

// writeErr maps service errors onto HTTP statuses: validation 400, missing
// records 404, everything else 500.
func writeErr(w http.ResponseWriter, op string, err error) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		jsonError(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		jsonError(w, "not found", http.StatusNotFound)
	default:
		log.Printf("[service] %s error: %v", op, err)
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
