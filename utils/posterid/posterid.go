package posterid

import "go.mongodb.org/mongo-driver/bson/primitive"

// New returns a fresh poster id in its string form.
func New() string {
	return primitive.NewObjectID().Hex()
}

// IsValid reports whether the string is a well-formed poster id.
func IsValid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// Parse converts the string form into the store's native key. Surrounding
// whitespace makes the id malformed.
func Parse(value string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(value)
}
