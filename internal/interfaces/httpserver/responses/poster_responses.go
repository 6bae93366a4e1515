package responses

import (
	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/extraction"
	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
)

// PosterResponse is the wire form of a poster.
type PosterResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Image     string `json:"image"`
	CreatedAt string `json:"createdAt"`
}

type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractDateResponse reports an extraction outcome. Date is null unless Success.
type ExtractDateResponse struct {
	Success bool    `json:"success"`
	Date    *string `json:"date"`
	Message string  `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func NewPosterResponse(p *poster.Poster) PosterResponse {
	return PosterResponse{
		ID:        p.ID,
		Title:     p.Title,
		Date:      p.Date,
		Location:  p.Location,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
}

func NewPosterListResponse(posters []*poster.Poster) []PosterResponse {
	out := make([]PosterResponse, 0, len(posters))
	for _, p := range posters {
		out = append(out, NewPosterResponse(p))
	}
	return out
}

func NewExtractDateResponse(result *extraction.Result) ExtractDateResponse {
	return ExtractDateResponse{
		Success: result.Success,
		Date:    result.Date,
		Message: result.Message,
	}
}
