// Package repo implements the data persistence layer for the painting
// catalog, backed by GORM. This file provides repository functions for the
// Painting model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a painting is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rosemary-art/go-gallery-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. It aliases
// gorm.ErrRecordNotFound for consistency across the service layer.
var ErrNotFound = gorm.ErrRecordNotFound

// previewScope narrows the Preview association to images actually flagged as
// preview, matching the catalog read shape.
func previewScope(db *gorm.DB) *gorm.DB {
	return db.Where("preview = ?", true)
}

// CreatePainting inserts a new painting row. A missing ID is filled with a
// random UUID and CreatedAt is set to UTC.
func CreatePainting(ctx context.Context, db *gorm.DB, p *domain.Painting) (*domain.Painting, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetPainting fetches a single painting by ID with its preview image
// preloaded. Soft-deleted rows are excluded. Returns ErrNotFound when the
// record does not exist.
func GetPainting(ctx context.Context, db *gorm.DB, id string) (*domain.Painting, error) {
	var p domain.Painting
	err := db.WithContext(ctx).
		Preload("Preview", previewScope).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CountPaintings returns the total number of live (not soft-deleted)
// paintings, for pagination metadata.
func CountPaintings(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Painting{}).
		Count(&total).Error
	return total, err
}

// ListPaintingsPage returns a page of paintings ordered by creation time
// descending (newest first), each with its preview image preloaded.
//
// The caller is responsible for computing offset and limit
// (e.g., (page-1)*pageSize).
func ListPaintingsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Painting, error) {
	var out []domain.Painting
	err := db.WithContext(ctx).
		Preload("Preview", previewScope).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// SavePainting persists all fields of an already-loaded painting. Used by
// the service layer for partial updates after mutating the loaded row.
func SavePainting(ctx context.Context, db *gorm.DB, p *domain.Painting) error {
	return db.WithContext(ctx).Save(p).Error
}

// DeletePainting removes a painting. With force=false the row is
// soft-deleted and disappears from catalog queries; with force=true it is
// removed permanently together with its images (FK cascade). Returns
// ErrNotFound when no live row matched.
func DeletePainting(ctx context.Context, db *gorm.DB, id string, force bool) error {
	tx := db.WithContext(ctx)
	if force {
		tx = tx.Unscoped()
	}
	res := tx.Where("id = ?", id).Delete(&domain.Painting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddImage attaches an image to a painting. When the image is flagged as
// preview, any previous preview flag on that painting is cleared first so at
// most one preview exists per painting.
func AddImage(ctx context.Context, db *gorm.DB, img *domain.PaintingImage) error {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if img.Preview {
			err := tx.Model(&domain.PaintingImage{}).
				Where("painting_id = ? AND preview = ?", img.PaintingID, true).
				Update("preview", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(img).Error
	})
}
