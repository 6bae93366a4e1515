package poster

import "context"

// ListLimit caps how many posters a single list call returns.
const ListLimit = 1000

// Repository defines persistence operations needed by the service.
//
// Implementations return platformerrors with type NOT_FOUND when the id does not
// exist and INVALID_IDENTIFIER when the id cannot be parsed into the store key.
type Repository interface {
	Insert(ctx context.Context, p *Poster) (string, error)
	// FindAll returns posters ordered by date ascending, ties by id ascending.
	FindAll(ctx context.Context) ([]*Poster, error)
	FindByID(ctx context.Context, id string) (*Poster, error)
	UpdateByID(ctx context.Context, id string, update Update) (*Poster, error)
	DeleteByID(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
