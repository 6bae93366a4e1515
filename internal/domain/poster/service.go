package poster

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/extraction"
	"github.com/oshaneheath-star/Poster-collection-app/internal/utils/platformerrors"
)

// DateExtractor reads the event date off a poster image.
type DateExtractor interface {
	Extract(ctx context.Context, payload string) *extraction.Result
}

// Service orchestrates poster persistence and date extraction.
type Service struct {
	repo      Repository
	extractor DateExtractor
	log       zerolog.Logger
	now       func() time.Time
}

func NewService(repo Repository, extractor DateExtractor, log zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		extractor: extractor,
		log:       log.With().Str("component", "poster-service").Logger(),
		now:       time.Now,
	}
}

// Create stores a new poster and returns it with its id and creation time.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Poster, error) {
	p := &Poster{
		Title:     params.Title,
		Date:      params.Date,
		Location:  params.Location,
		Image:     params.Image,
		CreatedAt: s.now().UTC().Format(CreatedAtLayout),
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	s.log.Info().Str("poster_id", id).Str("date", p.Date).Msg("poster created")
	return p, nil
}

// List returns every poster ordered by date.
func (s *Service) List(ctx context.Context) ([]*Poster, error) {
	posters, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if posters == nil {
		posters = []*Poster{}
	}
	return posters, nil
}

// Get returns a single poster.
func (s *Service) Get(ctx context.Context, id string) (*Poster, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update and returns the stored result.
func (s *Service) Update(ctx context.Context, id string, update Update) (*Poster, error) {
	if update.IsEmpty() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"No update data provided",
			nil,
			"4f0c2a1e-8b3d-4e6f-9a7c-1d2e3f4a5b6c",
		)
	}

	p, err := s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("poster_id", id).Int("fields", len(update.Fields())).Msg("poster updated")
	return p, nil
}

// Delete removes a poster permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("poster_id", id).Msg("poster deleted")
	return nil
}

// ExtractDate reads the date off an image. It never fails; see extraction.Result.
func (s *Service) ExtractDate(ctx context.Context, image string) *extraction.Result {
	return s.extractor.Extract(ctx, image)
}

// Ready checks that the store is reachable.
func (s *Service) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
