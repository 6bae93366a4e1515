package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/extraction"
	domain "github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/metrics"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/observability"
	"github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver/requests"
	"github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver/responses"
	"github.com/oshaneheath-star/Poster-collection-app/internal/utils/platformerrors"
)

const (
	rootMessage    = "Poster Collection API"
	deletedMessage = "Poster deleted successfully"
)

// PosterService is the slice of the poster service the HTTP layer needs.
type PosterService interface {
	Create(ctx context.Context, params domain.CreateParams) (*domain.Poster, error)
	List(ctx context.Context) ([]*domain.Poster, error)
	Get(ctx context.Context, id string) (*domain.Poster, error)
	Update(ctx context.Context, id string, update domain.Update) (*domain.Poster, error)
	Delete(ctx context.Context, id string) error
	ExtractDate(ctx context.Context, image string) *extraction.Result
}

// PosterHandler exposes poster endpoints.
type PosterHandler struct {
	service PosterService
	log     zerolog.Logger
}

func NewPosterHandler(service PosterService, log zerolog.Logger) *PosterHandler {
	return &PosterHandler{
		service: service,
		log:     log.With().Str("component", "poster-handler").Logger(),
	}
}

// Root godoc
// @Summary      API banner
// @Tags         meta
// @Produce      json
// @Success      200  {object}  responses.MessageResponse
// @Router       /api/ [get]
func (h *PosterHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, responses.MessageResponse{Message: rootMessage})
}

// Create godoc
// @Summary      Create a poster
// @Description  Stores a new poster record. The image is kept verbatim.
// @Tags         posters
// @Accept       json
// @Produce      json
// @Param        request  body      requests.CreatePosterRequest  true  "Poster"
// @Success      200      {object}  responses.PosterResponse
// @Failure      422      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /api/posters [post]
func (h *PosterHandler) Create(c *gin.Context) {
	var req requests.CreatePosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleBindingError(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.fail(c, "create", err, "failed to create poster")
		return
	}

	metrics.RecordPosterOperation("create", "ok")
	c.JSON(http.StatusOK, responses.NewPosterResponse(p))
}

// List godoc
// @Summary      List posters
// @Description  Returns up to 1000 posters ordered by date ascending.
// @Tags         posters
// @Produce      json
// @Success      200  {array}   responses.PosterResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/posters [get]
func (h *PosterHandler) List(c *gin.Context) {
	posters, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err, "failed to list posters")
		return
	}

	metrics.RecordPosterOperation("list", "ok")
	c.JSON(http.StatusOK, responses.NewPosterListResponse(posters))
}

// Get godoc
// @Summary      Get a poster
// @Tags         posters
// @Produce      json
// @Param        id   path      string  true  "Poster id"
// @Success      200  {object}  responses.PosterResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /api/posters/{id} [get]
func (h *PosterHandler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err, "failed to get poster")
		return
	}

	metrics.RecordPosterOperation("get", "ok")
	c.JSON(http.StatusOK, responses.NewPosterResponse(p))
}

// Update godoc
// @Summary      Update a poster
// @Description  Applies a partial update; absent or null fields are left untouched.
// @Tags         posters
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Poster id"
// @Param        request  body      requests.UpdatePosterRequest  true  "Fields to change"
// @Success      200      {object}  responses.PosterResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Failure      422      {object}  responses.ErrorResponse
// @Router       /api/posters/{id} [put]
func (h *PosterHandler) Update(c *gin.Context) {
	var req requests.UpdatePosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleBindingError(c, err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		h.fail(c, "update", err, "failed to update poster")
		return
	}

	metrics.RecordPosterOperation("update", "ok")
	c.JSON(http.StatusOK, responses.NewPosterResponse(p))
}

// Delete godoc
// @Summary      Delete a poster
// @Tags         posters
// @Produce      json
// @Param        id   path      string  true  "Poster id"
// @Success      200  {object}  responses.DeleteResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /api/posters/{id} [delete]
func (h *PosterHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err, "failed to delete poster")
		return
	}

	metrics.RecordPosterOperation("delete", "ok")
	c.JSON(http.StatusOK, responses.DeleteResponse{Message: deletedMessage, ID: id})
}

// ExtractDate godoc
// @Summary      Extract the event date from a poster image
// @Description  Always answers 200; a failed extraction is reported with success=false.
// @Tags         extraction
// @Accept       json
// @Produce      json
// @Param        request  body      requests.ExtractDateRequest  true  "Base64 image or data URL"
// @Success      200      {object}  responses.ExtractDateResponse
// @Failure      422      {object}  responses.ErrorResponse
// @Router       /api/extract-date [post]
func (h *PosterHandler) ExtractDate(c *gin.Context) {
	var req requests.ExtractDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleBindingError(c, err)
		return
	}

	result := h.service.ExtractDate(c.Request.Context(), *req.Image)
	metrics.RecordDateExtraction(extractionOutcome(result))
	c.JSON(http.StatusOK, responses.NewExtractDateResponse(result))
}

func (h *PosterHandler) fail(c *gin.Context, operation string, err error, message string) {
	status := "error"
	ctx := c.Request.Context()
	if platformErr := platformerrors.AsError(ctx, platformerrors.LayerHandler, err, message); platformErr != nil {
		if traceID := observability.GetTraceID(ctx); traceID != "" {
			platformErr.Context["trace_id"] = traceID
		}
		platformerrors.LogError(h.log, platformErr)
		if platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType()) < http.StatusInternalServerError {
			status = "rejected"
		}
	}
	metrics.RecordPosterOperation(operation, status)
	responses.HandleError(c, err, message)
}

func extractionOutcome(result *extraction.Result) string {
	switch {
	case result.Success:
		return "extracted"
	case result.Message == extraction.MessageNoDate:
		return "no_date"
	case result.Message == extraction.MessageNotConfigured:
		return "not_configured"
	default:
		return "failed"
	}
}
