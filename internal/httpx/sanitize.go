package httpx

import (
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson"

	mdb "casefeed/internal/mongo"
)

var ugc = bluemonday.UGCPolicy()

// sanitizeCase strips unsafe HTML from every string in a case before it is
// written to a response. Stored documents are never touched; this works on
// the decoded copy only.
func sanitizeCase(doc mdb.CaseDoc) mdb.CaseDoc {
	out, _ := sanitizeValue(doc).(bson.M)
	return out
}

func sanitizeValue(v any) any {
	switch t := v.(type) {
	case string:
		return ugc.Sanitize(t)
	case bson.M:
		out := make(bson.M, len(t))
		for k, val := range t {
			out[k] = sanitizeValue(val)
		}
		return out
	case map[string]any:
		out := make(bson.M, len(t))
		for k, val := range t {
			out[k] = sanitizeValue(val)
		}
		return out
	case bson.D:
		// the driver decodes nested documents as bson.D
		out := make(bson.D, len(t))
		for i, e := range t {
			out[i] = bson.E{Key: e.Key, Value: sanitizeValue(e.Value)}
		}
		return out
	case bson.A:
		out := make(bson.A, len(t))
		for i, val := range t {
			out[i] = sanitizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = sanitizeValue(val)
		}
		return out
	default:
		return v
	}
}
