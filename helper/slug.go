package helper

import (
	"fmt"

	"prephub_backend/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueListingSlug derives a slug from the listing name, suffixing
// a counter until it is free.
func GenerateUniqueListingSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Listing{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
