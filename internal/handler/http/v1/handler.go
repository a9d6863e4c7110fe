package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/paper_signal_service/internal/auth"
	"github.com/shenikar/paper_signal_service/internal/config"
	"github.com/shenikar/paper_signal_service/internal/realtime"
	"github.com/shenikar/paper_signal_service/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	signalService service.SignalService
	upgrader      *realtime.Upgrader
	verifier      *auth.Verifier
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(signalService service.SignalService, upgrader *realtime.Upgrader, verifier *auth.Verifier, logger *logrus.Logger, cfg *config.Config) *Handler {
	validate := validator.New()
	if err := validate.RegisterValidation("nonul", noNUL); err != nil {
		logger.WithError(err).Fatal("Failed to register request validators")
	}
	return &Handler{
		signalService: signalService,
		upgrader:      upgrader,
		verifier:      verifier,
		logger:        logger,
		validate:      validate,
		cfg:           cfg,
	}
}

// @Summary Create a paper request signal
// @Description Create a signal for a restroom. One active signal per user.
// @Tags Signals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param signal body CreateSignalRequest true "Signal creation request"
// @Success 201 {object} CreateSignalResponse
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Requester already has an active signal"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /signals [post]
func (h *Handler) createSignal(c *gin.Context) {
	var input CreateSignalRequest
	log := h.logger.WithField("method", "createSignal")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_payload"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_payload"})
		return
	}

	signal, err := h.signalService.CreateSignal(c.Request.Context(), callerID(c), DTOToSignalDraft(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreateSignalResponse{OK: true, ID: signal.ID, ExpiresAt: signal.ExpiresAt})
}

// @Summary Accept a signal
// @Description Commit to help with a signal. Extends its deadline to 30 minutes.
// @Tags Signals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param signal body SignalIDRequest true "Signal reference"
// @Success 200 {object} OKResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid signal ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Signal not found"
// @Failure 409 {object} ErrorResponse "Already accepted"
// @Failure 410 {object} ErrorResponse "Signal expired"
// @Router /signals/accept [post]
func (h *Handler) acceptSignal(c *gin.Context) {
	log := h.logger.WithField("method", "acceptSignal")
	id, ok := h.bindSignalID(c, log)
	if !ok {
		return
	}

	if _, err := h.signalService.AcceptSignal(c.Request.Context(), id, callerID(c)); err != nil {
		h.respondError(c, log.WithField("signal_id", id), err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// @Summary Release an accepted signal
// @Description The current accepter gives the signal back. Resets its deadline to 10 minutes.
// @Tags Signals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param signal body SignalIDRequest true "Signal reference"
// @Success 200 {object} OKResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid signal ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Signal not found"
// @Failure 409 {object} ErrorResponse "Not accepted by caller or expired"
// @Router /signals/unaccept [post]
func (h *Handler) unacceptSignal(c *gin.Context) {
	log := h.logger.WithField("method", "unacceptSignal")
	id, ok := h.bindSignalID(c, log)
	if !ok {
		return
	}

	if _, err := h.signalService.UnacceptSignal(c.Request.Context(), id, callerID(c)); err != nil {
		h.respondError(c, log.WithField("signal_id", id), err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// @Summary Cancel the acceptance of a signal
// @Description The requester or the accepter clears the accepter. Resets the deadline to 10 minutes.
// @Tags Signals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param signal body SignalIDRequest true "Signal reference"
// @Success 200 {object} OKResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid signal ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Signal not found"
// @Failure 409 {object} ErrorResponse "Not accepted yet"
// @Router /signals/accept-cancel [post]
func (h *Handler) cancelAcceptance(c *gin.Context) {
	log := h.logger.WithField("method", "cancelAcceptance")
	id, ok := h.bindSignalID(c, log)
	if !ok {
		return
	}

	if _, err := h.signalService.CancelAcceptance(c.Request.Context(), id, callerID(c)); err != nil {
		h.respondError(c, log.WithField("signal_id", id), err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// @Summary Cancel a signal
// @Description The requester retires the signal.
// @Tags Signals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param signal body SignalIDRequest true "Signal reference"
// @Success 200 {object} OKResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid signal ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Signal not found"
// @Failure 409 {object} ErrorResponse "Signal of another user"
// @Router /signals/cancel [post]
func (h *Handler) cancelSignal(c *gin.Context) {
	log := h.logger.WithField("method", "cancelSignal")
	id, ok := h.bindSignalID(c, log)
	if !ok {
		return
	}

	if err := h.signalService.CancelSignal(c.Request.Context(), id, callerID(c)); err != nil {
		h.respondError(c, log.WithField("signal_id", id), err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// @Summary List active signals
// @Description Active signals for the given restrooms, newest first. Accepted signals are visible only to their requester and accepter.
// @Tags Signals
// @Produce json
// @Param toiletIds query string false "Comma-separated restroom IDs"
// @Success 200 {object} ListSignalsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /signals/active [get]
func (h *Handler) listActiveSignals(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveSignals")
	ids := splitIDs(c.Query("toiletIds"))

	signals, err := h.signalService.ListActive(c.Request.Context(), ids, callerID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ListSignalsResponse{OK: true, Items: ModelsToSignalResponses(signals)})
}

// @Summary Subscribe to signal events
// @Description Upgrades to a WebSocket. Events for the given restrooms are pushed as JSON; without toiletIds the catch-all room is joined.
// @Tags Realtime
// @Param toiletIds query string false "Comma-separated restroom IDs"
// @Success 101 "Switching Protocols"
// @Failure 400 {string} string "Not a websocket handshake"
// @Router /ws [get]
func (h *Handler) subscribe(c *gin.Context) {
	log := h.logger.WithField("method", "subscribe")
	rooms := realtime.RoomsFor(splitIDs(c.Query("toiletIds")))

	// при ошибке upgrader сам отвечает клиенту
	if err := h.upgrader.Serve(c.Writer, c.Request, rooms); err != nil {
		log.WithError(err).Warn("Failed to open websocket")
		return
	}
	log.WithField("rooms", len(rooms)).Debug("Websocket subscription opened")
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindSignalID разбирает тело {signalId} и отвечает 400 при ошибке
func (h *Handler) bindSignalID(c *gin.Context, log *logrus.Entry) (uuid.UUID, bool) {
	var input SignalIDRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_payload"})
		return uuid.Nil, false
	}

	input.SignalID = strings.TrimSpace(input.SignalID)
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing_signal_id"})
		return uuid.Nil, false
	}

	id, err := uuid.Parse(input.SignalID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_signal_id"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит ошибки сервиса в HTTP-коды
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_payload"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found"})
	case errors.Is(err, service.ErrExpired):
		c.JSON(http.StatusGone, ErrorResponse{Error: "expired"})
	case errors.Is(err, service.ErrConflict):
		reason, _ := service.ConflictReason(err)
		c.JSON(http.StatusConflict, ErrorResponse{Error: reason})
	default:
		log.WithError(err).Error("Signal service failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
