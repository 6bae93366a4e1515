package entities

// Poster is the relational row for a poster record. ID holds a 24 character
// hex object id so both store backends hand out the same id shape.
type Poster struct {
	ID        string `gorm:"type:varchar(24);primaryKey"`
	Title     string `gorm:"type:text;not null"`
	Date      string `gorm:"type:varchar(64);index:idx_posters_date;not null"`
	Location  string `gorm:"type:text;not null"`
	Image     string `gorm:"type:text;not null"`
	CreatedAt string `gorm:"column:created_at;type:varchar(32);not null"`
}

func (Poster) TableName() string {
	return "posters"
}
