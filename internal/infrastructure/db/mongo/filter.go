package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/storefront/catalog-system/internal/core/ports"
)

// notDeleted augments a filter with the soft-delete visibility invariant.
// Every repository read in this package goes through it (or through
// listFilter below); no handler can issue an unfiltered read.
func notDeleted(filter bson.M) bson.M {
	filter["deleted"] = bson.M{"$ne": true}
	return filter
}

// listFilter builds a listing filter honoring ListOptions.IncludeDeleted,
// which the HTTP layer only grants to admin audit reads.
func listFilter(opts ports.ListOptions) bson.M {
	filter := bson.M{}
	if !opts.IncludeDeleted {
		filter = notDeleted(filter)
	}
	return filter
}

// objectID parses a hex document id. Malformed ids are reported as a plain
// false so callers can map them to their entity's not-found error, matching
// how an absent document behaves.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
