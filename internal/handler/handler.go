// Package handler exposes the engine over HTTP.
package handler

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"benefits-engine/internal/catalogue"
	"benefits-engine/internal/engine"
	"benefits-engine/internal/metrics"
	"benefits-engine/internal/model"
)

// Handler routes requests to the engine.
type Handler struct {
	engine  *engine.Engine
	cat     *catalogue.Catalogue
	limiter *rate.Limiter
	log     *zap.Logger
	promh   fasthttp.RequestHandler
}

// New builds the handler. rps bounds the screening endpoint; rps <= 0
// disables limiting.
func New(eng *engine.Engine, cat *catalogue.Catalogue, log *zap.Logger, rps int) *Handler {
	h := &Handler{
		engine: eng,
		cat:    cat,
		log:    log,
		promh:  fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
	if rps > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(rps), rps*2)
	}
	return h
}

// Handle is the fasthttp entry point.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/v1/bundle":
		h.handleBundle(ctx)
	case "/healthz":
		h.handleHealth(ctx)
	case "/metrics":
		h.promh(ctx)
	default:
		h.writeError(ctx, http.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleBundle(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		h.writeError(ctx, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if h.limiter != nil && !h.limiter.Allow() {
		h.writeError(ctx, http.StatusTooManyRequests, "Too many requests")
		return
	}

	var req model.ScreeningRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.Screen(ctx, &req)

	h.writeJSON(ctx, http.StatusOK, resp)
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	h.writeJSON(ctx, http.StatusOK, map[string]any{
		"status":   "ok",
		"schemes":  h.cat.SchemeCount(),
		"tax_year": h.cat.Rates.TaxYear,
	})
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		h.log.Error("encode response", zap.Error(err))
	}
	metrics.HTTPRequest(string(ctx.Path()), status)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	h.writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
