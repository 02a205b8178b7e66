// Package services – PaintingService
//
// This file implements the PaintingService, which manages the catalog
// lifecycle of paintings. It validates create/update input, coordinates
// repository operations for listing (with pagination), fetching, updating,
// and deleting (soft or forced), and resolves bilingual text against the
// caller's Accept-Language preference.
//
// Service-level errors (e.g., ErrPaintingNotFound) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/rosemary-art/go-gallery-backend/internal/domain"
)

// PaintingRepo defines the repository contract required by PaintingService.
// Implementations are responsible for persistence of painting aggregates.
type PaintingRepo interface {
	// CreatePainting inserts a new painting row.
	CreatePainting(ctx context.Context, db *gorm.DB, p *domain.Painting) (*domain.Painting, error)

	// GetPainting fetches a painting by ID with its preview preloaded.
	GetPainting(ctx context.Context, db *gorm.DB, id string) (*domain.Painting, error)

	// CountPaintings returns the total number of live paintings.
	CountPaintings(ctx context.Context, db *gorm.DB) (int64, error)

	// ListPaintingsPage returns a page of paintings, newest first.
	ListPaintingsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Painting, error)

	// SavePainting persists all fields of a loaded painting.
	SavePainting(ctx context.Context, db *gorm.DB, p *domain.Painting) error

	// DeletePainting soft-deletes, or with force removes permanently.
	DeletePainting(ctx context.Context, db *gorm.DB, id string, force bool) error
}

// CreatePaintingInput carries the fields of a catalog create request.
type CreatePaintingInput struct {
	Price         int64
	TitleCS       string
	TitleEN       string
	DescriptionCS string
	DescriptionEN string
	Width         int64
	Height        int64
}

// UpdatePaintingInput carries the optional fields of a partial update. Nil
// means "leave unchanged".
type UpdatePaintingInput struct {
	Price         *int64
	TitleCS       *string
	TitleEN       *string
	DescriptionCS *string
	DescriptionEN *string
	Width         *int64
	Height        *int64
	Sold          *bool
}

// empty reports whether the update would change nothing.
func (in UpdatePaintingInput) empty() bool {
	return in.Price == nil && in.TitleCS == nil && in.TitleEN == nil &&
		in.DescriptionCS == nil && in.DescriptionEN == nil &&
		in.Width == nil && in.Height == nil && in.Sold == nil
}

// supportedLocales is the bilingual catalog's matching order; English is the
// fallback when negotiation fails.
var supportedLocales = []language.Tag{language.English, language.Czech}

// PaintingService provides catalog-level operations over paintings. It
// enforces input rules and delegates persistence to the repository.
type PaintingService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the painting repository used by this service.
	Repo PaintingRepo

	matcher language.Matcher
}

// NewPaintingService constructs a PaintingService bound to db and r.
func NewPaintingService(db *gorm.DB, r PaintingRepo) *PaintingService {
	return &PaintingService{
		DB:      db,
		Repo:    r,
		matcher: language.NewMatcher(supportedLocales),
	}
}

// Create validates and inserts a new painting. The title and description are
// required in at least one language; price must be non-negative and the
// dimensions positive.
func (s *PaintingService) Create(ctx context.Context, in CreatePaintingInput) (*domain.Painting, error) {
	title := domain.Translation{CS: strings.TrimSpace(in.TitleCS), EN: strings.TrimSpace(in.TitleEN)}
	desc := domain.Translation{CS: strings.TrimSpace(in.DescriptionCS), EN: strings.TrimSpace(in.DescriptionEN)}

	if title.Empty() {
		return nil, ErrTitleRequired
	}
	if desc.Empty() {
		return nil, ErrDescriptionRequired
	}
	if in.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if in.Width <= 0 || in.Height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return s.Repo.CreatePainting(ctx, s.DB, &domain.Painting{
		Price:       in.Price,
		Title:       title,
		Description: desc,
		Width:       in.Width,
		Height:      in.Height,
	})
}

// Get returns a single painting, or ErrPaintingNotFound.
func (s *PaintingService) Get(ctx context.Context, id string) (*domain.Painting, error) {
	p, err := s.Repo.GetPainting(ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaintingNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListPage returns a page of paintings plus the total count. It applies
// defaults for invalid page/pageSize.
func (s *PaintingService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Painting, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountPaintings(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Painting{}, 0, nil
	}

	items, err := s.Repo.ListPaintingsPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// Update applies a partial update to an existing painting. It returns
// ErrNoFields when nothing would change and ErrPaintingNotFound when the
// painting does not exist.
func (s *PaintingService) Update(ctx context.Context, id string, in UpdatePaintingInput) (*domain.Painting, error) {
	if in.empty() {
		return nil, ErrNoFields
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Price != nil {
		if *in.Price < 0 {
			return nil, ErrInvalidPrice
		}
		p.Price = *in.Price
	}
	if in.TitleCS != nil {
		p.Title.CS = strings.TrimSpace(*in.TitleCS)
	}
	if in.TitleEN != nil {
		p.Title.EN = strings.TrimSpace(*in.TitleEN)
	}
	if in.DescriptionCS != nil {
		p.Description.CS = strings.TrimSpace(*in.DescriptionCS)
	}
	if in.DescriptionEN != nil {
		p.Description.EN = strings.TrimSpace(*in.DescriptionEN)
	}
	if in.Width != nil || in.Height != nil {
		if in.Width != nil {
			p.Width = *in.Width
		}
		if in.Height != nil {
			p.Height = *in.Height
		}
		if p.Width <= 0 || p.Height <= 0 {
			return nil, ErrInvalidDimensions
		}
	}
	if in.Sold != nil {
		p.SetSold(*in.Sold)
	}
	if p.Title.Empty() {
		return nil, ErrTitleRequired
	}

	if err := s.Repo.SavePainting(ctx, s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a painting from the catalog. force=false soft-deletes,
// force=true removes the row permanently.
func (s *PaintingService) Delete(ctx context.Context, id string, force bool) error {
	err := s.Repo.DeletePainting(ctx, s.DB, id, force)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPaintingNotFound
	}
	return err
}

// Localize picks the translation variant matching the Accept-Language
// header, falling back to English and then to whichever variant is present.
func (s *PaintingService) Localize(t domain.Translation, acceptLanguage string) string {
	tag, _ := language.MatchStrings(s.matcher, acceptLanguage)
	base, _ := tag.Base()
	if base.String() == "cs" && t.CS != "" {
		return t.CS
	}
	if t.EN != "" {
		return t.EN
	}
	return t.CS
}
