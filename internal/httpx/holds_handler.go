package httpx

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yodicommerce/holdlink/internal/config"
	"github.com/yodicommerce/holdlink/internal/hold"
)

type HoldsHandler struct {
	Sessions hold.SessionCreator
	Cfg      *config.Config
	Validate *validator.Validate
}

// HoldResp relays the provider session plus the formatted note. Nothing is
// stored; the response is the whole outcome.
type HoldResp struct {
	URL             string `json:"url"`
	SessionID       string `json:"sessionId"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	Total           string `json:"total"`
	DeliveryFee     string `json:"deliveryFee"`
	NoteText        string `json:"noteText"`
}

func (h *HoldsHandler) Register(r *chi.Mux) {
	// Both endpoint names the form iterations used route to the same handler.
	r.Post("/create-checkout-session", h.createHold)
	r.Post("/create-hold", h.createHold)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *HoldsHandler) createHold(w http.ResponseWriter, r *http.Request) {
	var req hold.HoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body."})
		return
	}

	// Admin gate runs before any validation or provider work. Fail closed: an
	// unset password rejects every request.
	if h.Cfg.AdminPassword == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server misconfigured, ADMIN_PASSWORD is not set."})
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.AdminPassword), []byte(h.Cfg.AdminPassword)) != 1 {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Invalid admin password."})
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": requestMessage(err)})
		return
	}

	res, err := hold.Build(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	reference := uuid.NewString()
	sess, err := h.Sessions.CreateHoldSession(ctx, hold.SessionParams{
		Items:         res.Items,
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Description:   fallback(req.InternalNote, "Hold checkout"),
		Reference:     reference,
		Metadata: map[string]string{
			"internal_note":  req.InternalNote,
			"delivery_fee":   res.DeliveryFeeMajor(),
			"hold_reference": reference,
		},
	})
	if err != nil {
		log.Printf("create checkout session: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, HoldResp{
		URL:             sess.URL,
		SessionID:       sess.ID,
		PaymentIntentID: sess.PaymentIntentID,
		Total:           res.TotalMajor(),
		DeliveryFee:     res.DeliveryFeeMajor(),
		NoteText:        hold.NoteText(req, res, h.Cfg.Currency, sess.ID),
	})
}

// requestMessage maps struct-validation failures to the messages the form
// shows the operator.
func requestMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Items":
				return "At least one item is required."
			case "CustomerEmail":
				return "Customer email is not a valid email address."
			}
		}
	}
	return "Invalid request."
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
