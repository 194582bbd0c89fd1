package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/estateview/estateview/internal/content"
	"github.com/estateview/estateview/internal/models"
	appErrors "github.com/estateview/estateview/pkg/errors"
	"github.com/estateview/estateview/pkg/logger"
	"github.com/estateview/estateview/pkg/response"
)

// ContentHandler exposes the AI-generated content cache over HTTP.
type ContentHandler struct {
	svc *content.Service
	log *zap.Logger
}

// NewContentHandler constructs the content handler.
func NewContentHandler(svc *content.Service) (*ContentHandler, error) {
	if svc == nil {
		return nil, errors.New("content handler: service is required")
	}
	return &ContentHandler{svc: svc, log: logger.WithModule("handlers.content")}, nil
}

// News serves the investment news ticker. With a city it returns city news;
// without one it falls back to market-wide trending news. Responses are
// marked uncacheable so browsers always see a cache refresh immediately.
func (h *ContentHandler) News(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))

	news, err := h.svc.CityNews(c.Request.Context(), city)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	response.Success(c, http.StatusOK, gin.H{
		"city": city,
		"news": news,
	})
}

// InvestmentInfo serves the cached investment summary for a city.
func (h *ContentHandler) InvestmentInfo(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		response.Error(c, appErrors.NewBadRequest("city query parameter is required"))
		return
	}

	info, err := h.svc.CityInvestmentInfo(c.Request.Context(), city)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	response.Success(c, http.StatusOK, gin.H{
		"city": city,
		"info": info,
	})
}

// Invalidate drops cached entries so the next request refetches them. An
// optional kind query narrows the drop to one content kind; an empty city
// targets the trending entry.
func (h *ContentHandler) Invalidate(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))

	var kinds []models.ContentKind
	if raw := strings.TrimSpace(c.Query("kind")); raw != "" {
		kind := models.ContentKind(raw)
		switch kind {
		case models.KindDailyNews, models.KindTrendingNews, models.KindInvestmentInfo:
			kinds = append(kinds, kind)
		default:
			response.Error(c, appErrors.NewBadRequest("unknown content kind"))
			return
		}
	}

	if err := h.svc.Invalidate(c.Request.Context(), city, kinds...); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invalidated": true})
}

func (h *ContentHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, content.ErrReservedCity) {
		response.Error(c, appErrors.NewBadRequest("city name is reserved"))
		return
	}

	h.log.Error("content cache unavailable", zap.Error(err))
	response.Error(c, appErrors.ErrContentStoreUnavailable.WithInternal(err))
}
