// Painting HTTP handlers.
//
// This file exposes REST endpoints for catalog resources:
//   - GET    /paintings        (list, paginated)
//   - GET    /paintings/{id}   (fetch one, localized display title)
//   - POST   /paintings        (create, authenticated)
//   - PUT    /paintings/{id}   (partial update, authenticated)
//   - DELETE /paintings/{id}   (soft delete, ?force=true for permanent, authenticated)
//
// Handlers are transport-thin: they validate input, call the catalog
// service, and either write the success envelope or raise the matching
// failure kind into the request-failure channel.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rosemary-art/go-gallery-backend/internal/apierr"
	"github.com/rosemary-art/go-gallery-backend/internal/domain"
	"github.com/rosemary-art/go-gallery-backend/internal/services"
	"github.com/rosemary-art/go-gallery-backend/internal/utils"
)

// PaintingService defines the catalog operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PaintingService interface {
	// Create validates and inserts a new painting.
	Create(ctx context.Context, in services.CreatePaintingInput) (*domain.Painting, error)
	// Get returns a single painting by ID.
	Get(ctx context.Context, id string) (*domain.Painting, error)
	// ListPage returns a page of paintings and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Painting, int64, error)
	// Update applies a partial update.
	Update(ctx context.Context, id string, in services.UpdatePaintingInput) (*domain.Painting, error)
	// Delete removes a painting, permanently when force is set.
	Delete(ctx context.Context, id string, force bool) error
	// Localize resolves bilingual text against an Accept-Language header.
	Localize(t domain.Translation, acceptLanguage string) string
}

// Handlers groups the HTTP endpoints for the painting catalog.
type Handlers struct {
	svc PaintingService
}

// New constructs a Handlers instance bound to the given service.
func New(svc PaintingService) *Handlers {
	return &Handlers{svc: svc}
}

//
// DTOs
//

// CreatePaintingRequest is the JSON payload for creating a painting.
type CreatePaintingRequest struct {
	Price         int64  `json:"price" example:"120000"`
	TitleCS       string `json:"title_cs" example:"Louka"`
	TitleEN       string `json:"title_en" example:"Meadow"`
	DescriptionCS string `json:"description_cs" example:"Olej na plátně"`
	DescriptionEN string `json:"description_en" example:"Oil on canvas"`
	Width         int64  `json:"width" example:"600"`
	Height        int64  `json:"height" example:"800"`
}

// UpdatePaintingRequest is the JSON payload for a partial update. Absent
// fields are left unchanged.
type UpdatePaintingRequest struct {
	Price         *int64  `json:"price,omitempty"`
	TitleCS       *string `json:"title_cs,omitempty"`
	TitleEN       *string `json:"title_en,omitempty"`
	DescriptionCS *string `json:"description_cs,omitempty"`
	DescriptionEN *string `json:"description_en,omitempty"`
	Width         *int64  `json:"width,omitempty"`
	Height        *int64  `json:"height,omitempty"`
	Sold          *bool   `json:"sold,omitempty"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListPaintingsResponse wraps a page of paintings and pagination info.
type ListPaintingsResponse struct {
	Paintings  []domain.Painting `json:"paintings"`
	Pagination Pagination        `json:"pagination"`
}

// PaintingResponse wraps a painting with its display title resolved against
// the caller's Accept-Language preference.
type PaintingResponse struct {
	Painting     *domain.Painting `json:"painting"`
	DisplayTitle string           `json:"display_title"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.ClampInt(utils.AtoiDefault(c.Query("page_size"), defaultPageSize), 1, maxPageSize)
	return
}

// paintingID validates the :id path param as a UUID.
func paintingID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if _, err := uuid.Parse(id); err != nil {
		raise(c, apierr.Validation("painting id must be a UUID"))
		return "", false
	}
	return id, true
}

// raiseServiceErr translates a service-level error into the matching failure
// kind. Unknown errors become the internal-server kind so the dispatcher's
// 500 path still carries the original failure into the logs.
func raiseServiceErr(c *gin.Context, err error) {
	switch err {
	case services.ErrPaintingNotFound:
		raise(c, apierr.NotFound())
	case services.ErrTitleRequired,
		services.ErrDescriptionRequired,
		services.ErrInvalidPrice,
		services.ErrInvalidDimensions,
		services.ErrNoFields:
		raise(c, apierr.Validation(err.Error()))
	default:
		raise(c, apierr.Internal())
	}
}

//
// Handlers
//

// ListPaintings godoc
// @ID          listPaintings
// @Summary     List paintings (paginated)
// @Description Returns a page of catalog paintings, newest first.
// @Tags        Paintings
// @Produce     json
// @Param       page       query  int  false  "Page number (default 1)"
// @Param       page_size  query  int  false  "Page size (default 20, max 100)"
// @Success     200  {object}  apierr.Envelope
// @Failure     500  {object}  apierr.Envelope
// @Router      /paintings [get]
func (h *Handlers) ListPaintings(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.svc.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		raiseServiceErr(c, err)
		return
	}

	totalPages := utils.TotalPages(total, pageSize)
	respond(c, http.StatusOK, "success", ListPaintingsResponse{
		Paintings: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetPainting godoc
// @ID          getPainting
// @Summary     Fetch a painting
// @Description Returns a single painting with a display title localized by Accept-Language.
// @Tags        Paintings
// @Produce     json
// @Param       id  path  string  true  "Painting ID (UUID)"
// @Success     200  {object}  apierr.Envelope
// @Failure     400  {object}  apierr.Envelope
// @Failure     404  {object}  apierr.Envelope
// @Router      /paintings/{id} [get]
func (h *Handlers) GetPainting(c *gin.Context) {
	id, ok := paintingID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		raiseServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, "success", PaintingResponse{
		Painting:     p,
		DisplayTitle: h.svc.Localize(p.Title, c.GetHeader("Accept-Language")),
	})
}

// CreatePainting godoc
// @ID          createPainting
// @Summary     Create a painting
// @Tags        Paintings
// @Accept      json
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       body  body  handlers.CreatePaintingRequest  true  "Create payload"
// @Success     201  {object}  apierr.Envelope
// @Failure     400  {object}  apierr.Envelope
// @Failure     401  {object}  apierr.Envelope
// @Router      /paintings [post]
func (h *Handlers) CreatePainting(c *gin.Context) {
	var req CreatePaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		raise(c, apierr.BodyParse(err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), services.CreatePaintingInput{
		Price:         req.Price,
		TitleCS:       req.TitleCS,
		TitleEN:       req.TitleEN,
		DescriptionCS: req.DescriptionCS,
		DescriptionEN: req.DescriptionEN,
		Width:         req.Width,
		Height:        req.Height,
	})
	if err != nil {
		raiseServiceErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "paintingCreated", p)
}

// UpdatePainting godoc
// @ID          updatePainting
// @Summary     Update a painting
// @Description Applies a partial update; absent fields are left unchanged.
// @Tags        Paintings
// @Accept      json
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       id    path  string  true  "Painting ID (UUID)"
// @Param       body  body  handlers.UpdatePaintingRequest  true  "Update payload"
// @Success     200  {object}  apierr.Envelope
// @Failure     400  {object}  apierr.Envelope
// @Failure     401  {object}  apierr.Envelope
// @Failure     404  {object}  apierr.Envelope
// @Router      /paintings/{id} [put]
func (h *Handlers) UpdatePainting(c *gin.Context) {
	id, ok := paintingID(c)
	if !ok {
		return
	}

	var req UpdatePaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		raise(c, apierr.BodyParse(err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, services.UpdatePaintingInput{
		Price:         req.Price,
		TitleCS:       req.TitleCS,
		TitleEN:       req.TitleEN,
		DescriptionCS: req.DescriptionCS,
		DescriptionEN: req.DescriptionEN,
		Width:         req.Width,
		Height:        req.Height,
		Sold:          req.Sold,
	})
	if err != nil {
		raiseServiceErr(c, err)
		return
	}
	respond(c, http.StatusOK, "paintingUpdated", p)
}

// DeletePainting godoc
// @ID          deletePainting
// @Summary     Delete a painting
// @Description Soft-deletes by default; force=true removes the row permanently.
// @Tags        Paintings
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       id     path   string  true   "Painting ID (UUID)"
// @Param       force  query  bool    false  "Permanent removal"
// @Success     200  {object}  apierr.Envelope
// @Failure     401  {object}  apierr.Envelope
// @Failure     404  {object}  apierr.Envelope
// @Router      /paintings/{id} [delete]
func (h *Handlers) DeletePainting(c *gin.Context) {
	id, ok := paintingID(c)
	if !ok {
		return
	}
	force := strings.EqualFold(c.Query("force"), "true")

	if err := h.svc.Delete(c.Request.Context(), id, force); err != nil {
		raiseServiceErr(c, err)
		return
	}
	respond(c, http.StatusOK, "paintingDeleted", nil)
}
