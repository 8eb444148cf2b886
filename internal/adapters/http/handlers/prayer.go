package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/maeumgido/internal/adapters/http/dto"
	"github.com/jsamuelsen/maeumgido/internal/app"
	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/platform/logging"
)

// PrayerHandler serves the recommendation API.
type PrayerHandler struct {
	service *app.RecommendationService
}

// NewPrayerHandler creates a prayer handler.
func NewPrayerHandler(service *app.RecommendationService) *PrayerHandler {
	return &PrayerHandler{service: service}
}

// Facets handles GET /api/v1/facets.
func (h *PrayerHandler) Facets(c *gin.Context) {
	facets := h.service.Facets(c.Request.Context())

	c.JSON(http.StatusOK, dto.FacetsResponse{
		Emotions:   facets.Emotions,
		Situations: facets.Situations,
	})
}

// Recommend handles GET /api/v1/recommendations?emotion=&situation=.
// An empty catalog is still 200, with no featured prayer and a message.
func (h *PrayerHandler) Recommend(c *gin.Context) {
	var q dto.SelectionQuery
	if !bindQuery(c, &q) {
		return
	}

	sel := q.Selection()

	rec, err := h.service.Recommend(selectionContext(c, sel), sel)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRecommendationResponse(&rec, app.EmptyCatalogMessage))
}

// ListPrayers handles GET /api/v1/prayers?cursor=&limit=.
func (h *PrayerHandler) ListPrayers(c *gin.Context) {
	var q dto.PrayerListQuery
	if !bindQuery(c, &q) {
		return
	}

	limit := q.GetLimit()

	prayers, err := h.service.ListPrayers(c.Request.Context(), q.After(), limit+1)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]dto.PrayerResponse, 0, len(prayers))
	for i := range prayers {
		items = append(items, dto.NewPrayerResponse(&prayers[i]))
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(items, limit, dto.PrayerCursor))
}

// GetPrayer handles GET /api/v1/prayers/:id.
func (h *PrayerHandler) GetPrayer(c *gin.Context) {
	prayer, err := h.service.Prayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPrayerResponse(&prayer))
}

// Share handles GET /api/v1/share?emotion=&situation=. It returns the
// payload for the featured prayer; web clients run the share sheet or
// clipboard themselves.
func (h *PrayerHandler) Share(c *gin.Context) {
	var q dto.SelectionQuery
	if !bindQuery(c, &q) {
		return
	}

	sel := q.Selection()

	payload, err := h.service.SharePayload(selectionContext(c, sel), sel)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewShareResponse(payload))
}

// RegisterPrayerRoutes registers the API routes on rg.
func (h *PrayerHandler) RegisterPrayerRoutes(rg *gin.RouterGroup) {
	rg.GET("/facets", h.Facets)
	rg.GET("/recommendations", h.Recommend)
	rg.GET("/prayers", h.ListPrayers)
	rg.GET("/prayers/:id", h.GetPrayer)
	rg.GET("/share", h.Share)
}

// selectionContext tags the request logger with the chosen facets.
func selectionContext(c *gin.Context, sel domain.Selection) context.Context {
	return logging.WithAttrs(c.Request.Context(),
		slog.String("emotion", sel.Emotion),
		slog.String("situation", sel.Situation),
	)
}

// bindQuery binds and validates the query string, writing a 400 on failure.
func bindQuery(c *gin.Context, v any) bool {
	err := dto.BindQueryAndValidate(c, v)
	if err == nil {
		return true
	}

	if details := dto.ValidationErrors(err); len(details) > 0 {
		dto.RespondWithValidationErrors(c, details)
		return false
	}

	dto.AbortWithCode(c, dto.ErrorCodeBadRequest, err.Error())

	return false
}
