package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"clickrec/internal/config"
	"clickrec/internal/domain"
	"clickrec/internal/http/dto"
	"clickrec/internal/http/resp"
	"clickrec/internal/metrics"
	"clickrec/internal/model"
	"clickrec/internal/queue"
	"clickrec/internal/queue/rabbitmq"
	"clickrec/internal/service/clicks"
	"clickrec/internal/sse"
)

const welcomeMessage = "Welcome to the Recommendation API!"

type Handler struct {
	cfg *config.Config
	svc *clicks.Service
	hub *sse.Hub
	log *zap.Logger
	pub queue.Publisher
}

func NewHandler(cfg *config.Config, svc *clicks.Service, hub *sse.Hub, logger *zap.Logger, publisher queue.Publisher) *Handler {
	return &Handler{cfg: cfg, svc: svc, hub: hub, log: logger, pub: publisher}
}

func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.WelcomeResponse{Message: welcomeMessage})
}

func (h *Handler) RecordClick(c *gin.Context) {
	var req dto.RecordClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "userId and clickedCategory are required strings"})
		return
	}
	if _, err := h.svc.Record(c.Request.Context(), req.UserID, req.ClickedCategory); err != nil {
		if errors.Is(err, domain.ErrInvalidClick) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "userId and clickedCategory are required strings"})
			return
		}
		h.log.Error("record click failed",
			zap.String("user_id", req.UserID),
			zap.String("category", req.ClickedCategory),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to record click"})
		return
	}
	metrics.ClicksRecorded.WithLabelValues("http").Inc()
	h.log.Info("click recorded", zap.String("user_id", req.UserID), zap.String("category", req.ClickedCategory))

	c.JSON(http.StatusOK, dto.ResultResponse{
		Status:  domain.StatusSuccess,
		Message: "Click recorded for " + req.ClickedCategory,
	})
}

func (h *Handler) PublishClick(c *gin.Context) {
	var req dto.RecordClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "userId and clickedCategory are required strings"})
		return
	}
	if err := domain.ValidateClick(req.UserID, req.ClickedCategory); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "userId and clickedCategory are required strings"})
		return
	}

	payload, err := rabbitmq.EncodeClick(req.UserID, req.ClickedCategory)
	if err != nil {
		h.log.Error("publish payload marshal failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to publish click"})
		return
	}

	prefix := h.cfg.RabbitPublishPrefix
	if prefix == "" {
		prefix = "click"
	}
	routingKey := prefix + ".ingest"
	if err := h.pub.Publish(c.Request.Context(), payload, routingKey); err != nil {
		h.log.Error("publish click failed",
			zap.String("user_id", req.UserID),
			zap.String("category", req.ClickedCategory),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to publish click"})
		return
	}

	c.JSON(http.StatusAccepted, dto.StatusResponse{Code: resp.CodeQueued, Message: "queued"})
}

func (h *Handler) GetRecommendations(c *gin.Context) {
	userID := c.Param("userId")

	windowSize := h.cfg.DefaultWindowSize
	if windowSize == 0 {
		windowSize = domain.DefaultWindowSize
	}
	if v, ok := c.GetQuery("windowSize"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "windowSize must be an integer"})
			return
		}
		windowSize = n
	}

	rec, err := h.svc.Recommend(c.Request.Context(), userID, windowSize)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.RecommendationsServed.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusOK, dto.ResultResponse{Status: domain.StatusError, Message: domain.MessageUserNotFound})
			return
		}
		metrics.RecommendationsServed.WithLabelValues("error").Inc()
		h.log.Error("get recommendations failed",
			zap.String("user_id", userID),
			zap.Int("window_size", windowSize),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to load sub-categories"})
		return
	}
	metrics.RecommendationsServed.WithLabelValues("success").Inc()

	c.JSON(http.StatusOK, dto.NewRecommendationsResponse(rec, domain.StatusSuccess))
}

func (h *Handler) ResetClicks(c *gin.Context) {
	userID := c.Param("userId")
	if err := h.svc.Reset(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LedgerResets.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: resp.CodeNotFound, Message: domain.MessageUserNotFound})
			return
		}
		h.log.Error("reset clicks failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to reset clicks"})
		return
	}
	metrics.LedgerResets.WithLabelValues("reset").Inc()

	c.JSON(http.StatusOK, dto.ResultResponse{
		Status:  domain.StatusSuccess,
		Message: fmt.Sprintf("Click history for %s has been reset.", userID),
	})
}

func (h *Handler) ClickStream(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "userId required"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		h.log.Error("streaming unsupported", zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "streaming unsupported"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	limit := h.cfg.HistoryLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}

	// limit=0 skips the replay instead of replaying everything
	if limit > 0 {
		history, err := h.svc.History(c.Request.Context(), userID, limit)
		if err != nil {
			h.log.Error("click history failed", zap.String("user_id", userID), zap.Int("limit", limit), zap.Error(err))
		} else {
			for _, category := range history {
				if err := writeClick(c.Writer, model.Click{UserID: userID, Category: category}); err != nil {
					h.log.Error("write history click failed", zap.String("user_id", userID), zap.Error(err))
					return
				}
			}
		}
	}
	flusher.Flush()

	client := &sse.Client{
		UserID: userID,
		Ch:     make(chan model.Click, 16),
	}
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	interval := h.cfg.SSEHeartbeat
	if interval <= 0 {
		interval = 15 * time.Second
	}
	heartbeat := time.NewTicker(interval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-h.hub.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				h.log.Error("heartbeat write failed", zap.String("user_id", userID), zap.Error(err))
				return
			}
			flusher.Flush()
		case click, ok := <-client.Ch:
			if !ok {
				return
			}
			if err := writeClick(c.Writer, click); err != nil {
				h.log.Error("write click failed", zap.String("user_id", userID), zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func writeClick(w http.ResponseWriter, click model.Click) error {
	payload, err := json.Marshal(click)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: click\ndata: %s\n\n", payload)
	return err
}
