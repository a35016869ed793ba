package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/cart"
	"github.com/vladislavdragonenkov/cart/internal/domain"
)

// SessionHeader передаёт id сессии в запросе и ответе.
const SessionHeader = "X-Session-ID"

type ctxKey struct{}

// Handler обслуживает HTTP-запросы к корзине текущей сессии.
type Handler struct {
	store  domain.SessionStore
	cookie string
	opts   cart.Options
	logger *log.Entry
}

// NewHandler создаёт обработчики поверх хранилища сессии.
func NewHandler(store domain.SessionStore, cookie string, opts cart.Options, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}
	if opts.Logger == nil {
		opts.Logger = logger
	}
	return &Handler{store: store, cookie: cookie, opts: opts, logger: logger}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// itemPayload отличает отсутствующие quantity и price от явного нуля.
type itemPayload struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
	Tax      string   `json:"tax"`
	Discount string   `json:"discount"`
}

func (p itemPayload) toLineItem() (domain.LineItem, error) {
	if p.Quantity == nil {
		return domain.LineItem{}, domain.NewValidationError("item quantity is required")
	}
	if p.Price == nil {
		return domain.LineItem{}, domain.NewValidationError("item price is required")
	}
	return domain.LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: *p.Quantity,
		Price:    *p.Price,
		Tax:      p.Tax,
		Discount: p.Discount,
	}, nil
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}
	h.mutate(w, r, http.StatusCreated, func(ctx context.Context, c *cart.Cart) error { return c.Add(ctx, item) })
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}
	h.mutate(w, r, http.StatusOK, func(ctx context.Context, c *cart.Cart) error { return c.Update(ctx, item) })
}

func (h *Handler) decodeItem(w http.ResponseWriter, r *http.Request) (domain.LineItem, bool) {
	var payload itemPayload
	if !decode(w, r, &payload) {
		return domain.LineItem{}, false
	}
	item, err := payload.toLineItem()
	if err != nil {
		h.fail(w, r, err)
		return domain.LineItem{}, false
	}
	return item, true
}

// RemoveItem удаляет позицию целиком или, с ?quantity=n, только n единиц.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	raw := r.URL.Query().Get("quantity")
	if raw == "" {
		h.mutate(w, r, http.StatusOK, func(ctx context.Context, c *cart.Cart) error { return c.Remove(ctx, id) })
		return
	}

	quantity, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be an integer")
		return
	}
	h.mutate(w, r, http.StatusOK, func(ctx context.Context, c *cart.Cart) error {
		return c.RemoveQuantity(ctx, id, quantity)
	})
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	c, ok := h.open(w, r)
	if !ok {
		return
	}
	items, err := c.All(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) AddCoupon(w http.ResponseWriter, r *http.Request) {
	var coupon domain.Coupon
	if !decode(w, r, &coupon) {
		return
	}
	h.mutate(w, r, http.StatusCreated, func(ctx context.Context, c *cart.Cart) error { return c.AddCoupon(ctx, coupon) })
}

func (h *Handler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, func(ctx context.Context, c *cart.Cart) error { return c.RemoveCoupon(ctx, id) })
}

func (h *Handler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	c, ok := h.open(w, r)
	if !ok {
		return
	}
	coupons, err := c.Coupons(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"coupons": coupons})
}

func (h *Handler) AddOtherCharge(w http.ResponseWriter, r *http.Request) {
	var charge domain.OtherCharge
	if !decode(w, r, &charge) {
		return
	}
	h.mutate(w, r, http.StatusCreated, func(ctx context.Context, c *cart.Cart) error { return c.AddOtherCharge(ctx, charge) })
}

func (h *Handler) RemoveOtherCharge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.mutate(w, r, http.StatusOK, func(ctx context.Context, c *cart.Cart) error { return c.RemoveOtherCharge(ctx, id) })
}

func (h *Handler) ListOtherCharges(w http.ResponseWriter, r *http.Request) {
	c, ok := h.open(w, r)
	if !ok {
		return
	}
	charges, err := c.OtherCharges(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"charges": charges})
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, http.StatusOK, func(ctx context.Context, c *cart.Cart) error { return c.Clear(ctx) })
}

func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	c, ok := h.open(w, r)
	if !ok {
		return
	}
	count, err := c.Count(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// Total возвращает итог; с ?summary=true вместе с полной разбивкой.
func (h *Handler) Total(w http.ResponseWriter, r *http.Request) {
	c, ok := h.open(w, r)
	if !ok {
		return
	}
	summary, err := c.Summary(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if detailed, _ := strconv.ParseBool(r.URL.Query().Get("summary")); detailed {
		writeJSON(w, http.StatusOK, summary)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"total_due": summary.TotalDue})
}

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, okStatus int, fn func(ctx context.Context, c *cart.Cart) error) {
	c, ok := h.open(w, r)
	if !ok {
		return
	}
	if err := fn(r.Context(), c); err != nil {
		h.fail(w, r, err)
		return
	}

	count, err := c.Count(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, okStatus, map[string]int{"count": count})
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) (*cart.Cart, bool) {
	sessionID, _ := r.Context().Value(ctxKey{}).(string)
	c, err := cart.Open(r.Context(), h.store, cart.NamespaceFor(h.cookie, sessionID), h.opts)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	return c, true
}

// session берёт id сессии из заголовка или выдаёт новый и всегда возвращает его в ответе.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(SessionHeader))
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		w.Header().Set(SessionHeader, sessionID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sessionID)))
	})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.WithFields(log.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  middleware.GetReqID(r.Context()),
		}).Debug("http request handled")
	})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNamespaceRequired):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInsufficientQuantity):
		writeError(w, http.StatusConflict, "insufficient_quantity", err.Error())
	case errors.Is(err, domain.ErrSessionVersionConflict):
		writeError(w, http.StatusConflict, "version_conflict", err.Error())
	default:
		h.logger.WithError(err).WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("cart request failed")
		writeError(w, http.StatusInternalServerError, "internal", "cart storage failure")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
