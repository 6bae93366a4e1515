package requests

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
)

// CreatePosterRequest is the body of POST /api/posters. Title and location
// must be non-empty; date and image only need to be present, so "" is kept as is.
type CreatePosterRequest struct {
	Title    string  `json:"title" binding:"required"`
	Date     *string `json:"date" binding:"required"`
	Location string  `json:"location" binding:"required"`
	Image    *string `json:"image" binding:"required"`
}

// ToDomain converts request to domain params
func (r *CreatePosterRequest) ToDomain() poster.CreateParams {
	return poster.CreateParams{
		Title:    r.Title,
		Date:     *r.Date,
		Location: r.Location,
		Image:    *r.Image,
	}
}

// UpdatePosterRequest is the body of PUT /api/posters/{id}. Absent or null
// fields are left untouched.
type UpdatePosterRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1"`
	Date     *string `json:"date"`
	Location *string `json:"location" binding:"omitempty,min=1"`
	Image    *string `json:"image"`
}

// ToDomain converts request to a partial domain update
func (r *UpdatePosterRequest) ToDomain() poster.Update {
	return poster.Update{
		Title:    r.Title,
		Date:     r.Date,
		Location: r.Location,
		Image:    r.Image,
	}
}

// ExtractDateRequest is the body of POST /api/extract-date. An empty string is
// accepted here and reported by the extractor.
type ExtractDateRequest struct {
	Image *string `json:"image" binding:"required"`
}

var registerOnce sync.Once

// RegisterJSONFieldNames makes validation errors report json field names.
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}
