// Package domain defines the persistence models for the painting catalog.
// These types are mapped with GORM and form the core data layer of the
// gallery backend.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Translation holds the bilingual text pair used for painting titles and
// descriptions. It is stored as a JSON column.
type Translation struct {
	CS string `json:"cs"`
	EN string `json:"en"`
}

// Empty reports whether both language variants are blank.
func (t Translation) Empty() bool { return t.CS == "" && t.EN == "" }

// Painting represents a catalogued art piece.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Price: listed price in the smallest currency unit.
//   - Title / Description: bilingual text stored as JSON.
//   - Data: free-form string map for auxiliary flags (e.g. "sold").
//   - Width / Height: canvas dimensions in millimeters.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker; deleted rows stay out of every query
//     unless a force delete removed them entirely.
//   - Preview: the preview image joined onto catalog reads.
type Painting struct {
	ID          string            `json:"id"          gorm:"type:char(36);primaryKey"`
	Price       int64             `json:"price"       gorm:"not null"`
	Title       Translation       `json:"title"       gorm:"serializer:json"`
	Description Translation       `json:"description" gorm:"serializer:json"`
	Data        map[string]string `json:"data"        gorm:"serializer:json"`
	Width       int64             `json:"width"`
	Height      int64             `json:"height"`
	CreatedAt   time.Time         `json:"created"`
	UpdatedAt   time.Time         `json:"updated"`
	DeletedAt   gorm.DeletedAt    `json:"-"           gorm:"index"`

	// Preview is the flagged preview image, when one exists.
	Preview *PaintingImage `json:"preview" gorm:"foreignKey:PaintingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Painting.
func (Painting) TableName() string { return "paintings" }

// Sold reports whether the painting carries the sold flag.
func (p *Painting) Sold() bool { return p.Data["sold"] == "true" }

// SetSold records the sold flag in the auxiliary data map.
func (p *Painting) SetSold(v bool) {
	if p.Data == nil {
		p.Data = map[string]string{}
	}
	if v {
		p.Data["sold"] = "true"
	} else {
		p.Data["sold"] = "false"
	}
}

// PaintingImage represents a stored image attached to a painting. At most one
// image per painting carries the Preview flag; that one is joined onto
// catalog responses.
type PaintingImage struct {
	ID         string         `json:"id"          gorm:"type:char(36);primaryKey"`
	PaintingID string         `json:"painting_id" gorm:"type:char(36);not null;index"`
	URL        string         `json:"url"         gorm:"type:varchar(2048);not null"`
	Alt        string         `json:"alt"         gorm:"type:varchar(255)"`
	Title      string         `json:"title"       gorm:"type:varchar(255)"`
	Preview    bool           `json:"preview"     gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"created"`
	UpdatedAt  time.Time      `json:"updated"`
	DeletedAt  gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for PaintingImage.
func (PaintingImage) TableName() string { return "painting_images" }
