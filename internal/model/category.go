package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlugPattern is the only accepted shape for a category slug: lowercase
// letters in one or more groups joined by single hyphens.
var SlugPattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// DefaultEmojiFallback is shown for any category without its own emoji and
// without an entry in the lookup table.
const DefaultEmojiFallback = "📦"

var defaultEmojis = map[string]string{
	"uniformes":    "👔",
	"calzado":      "👞",
	"epp":          "🦺",
	"herramientas": "🔧",
	"accesorios":   "🎒",
}

// DefaultEmoji returns the lookup-table emoji for a slug.
func DefaultEmoji(slug string) string {
	if e, ok := defaultEmojis[slug]; ok {
		return e
	}
	return DefaultEmojiFallback
}

// Category groups products for the public catalog. Products reference it by
// Slug, which is chosen once at creation and never changes.
type Category struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Emoji       *string
	// Position orders categories saved together in one batch.
	Position  int `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string { return "categories" }

// BeforeCreate assigns the store id. It is generated here rather than by a
// column default so the same model works on Postgres and SQLite.
func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DisplayEmoji is the stored emoji or the lookup-table default.
func (c Category) DisplayEmoji() string {
	if c.Emoji != nil && *c.Emoji != "" {
		return *c.Emoji
	}
	return DefaultEmoji(c.Slug)
}
