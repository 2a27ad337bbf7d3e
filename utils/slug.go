package utils

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	reSlugInvalid = regexp.MustCompile(`[^a-z0-9 -]`)
	reSlugSpace   = regexp.MustCompile(`\s+`)
	reSlugHyphen  = regexp.MustCompile(`-+`)
)

// Slugify turns free text into a url slug: lowercase, strip anything
// outside [a-z0-9 -], spaces to hyphens, collapse runs of hyphens,
// trim. "My Course! 2.0" -> "my-course-20".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reSlugInvalid.ReplaceAllString(s, "")
	s = reSlugSpace.ReplaceAllString(s, "-")
	s = reSlugHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EnsureUniqueSlug appends -2, -3, ... until the slug is free in the
// given table (case-insensitive). Soft-deleted rows still hold their
// slug so a revived record cannot collide.
func EnsureUniqueSlug(db *gorm.DB, table, baseSlug string) (string, error) {
	if baseSlug == "" {
		baseSlug = "item"
	}
	slug := baseSlug
	for i := 0; i < 25; i++ {
		var count int64
		if err := db.Table(table).Where("LOWER(slug) = ?", strings.ToLower(slug)).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", baseSlug, i+2)
	}
	return "", fmt.Errorf("could not find a unique slug for %q", baseSlug)
}
