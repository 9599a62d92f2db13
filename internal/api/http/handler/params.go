package handler

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/model"
)

// parseID converts a hex identifier from a URL parameter or request
// body into an ObjectID.
func parseID(field, value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, model.NewValidationError("invalid %s", field)
	}
	return id, nil
}

// parseIDs converts a list of hex identifiers, rejecting empty lists.
func parseIDs(field string, values []string) ([]primitive.ObjectID, error) {
	if len(values) == 0 {
		return nil, model.NewValidationError("%s are required", field)
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		id, err := parseID(field, v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
