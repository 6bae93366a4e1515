package poster

// Field names shared by the persisted document, the relational columns and the JSON body.
const (
	FieldTitle     = "title"
	FieldDate      = "date"
	FieldLocation  = "location"
	FieldImage     = "image"
	FieldCreatedAt = "createdAt"
)

// CreatedAtLayout is the ISO-8601 layout used for createdAt.
const CreatedAtLayout = "2006-01-02T15:04:05.000000Z"

// Poster is the only persisted entity. ID is always the string form of the store key.
type Poster struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Image     string `json:"image"`
	CreatedAt string `json:"createdAt"`
}

// CreateParams holds the caller supplied fields of a new poster.
type CreateParams struct {
	Title    string
	Date     string
	Location string
	Image    string
}

// Update is a partial update; nil fields are left untouched.
type Update struct {
	Title    *string
	Date     *string
	Location *string
	Image    *string
}

// IsEmpty reports whether the update would write nothing.
func (u Update) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// Fields returns the non-nil fields keyed by their persisted name.
func (u Update) Fields() map[string]string {
	fields := make(map[string]string, 4)
	if u.Title != nil {
		fields[FieldTitle] = *u.Title
	}
	if u.Date != nil {
		fields[FieldDate] = *u.Date
	}
	if u.Location != nil {
		fields[FieldLocation] = *u.Location
	}
	if u.Image != nil {
		fields[FieldImage] = *u.Image
	}
	return fields
}

// Apply returns a copy of p with the update applied.
func (u Update) Apply(p Poster) Poster {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Date != nil {
		p.Date = *u.Date
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	return p
}
