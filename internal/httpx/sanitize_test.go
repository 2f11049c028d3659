package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	mdb "casefeed/internal/mongo"
)

func TestSanitizeCaseStripsScript(t *testing.T) {
	doc := mdb.CaseDoc{
		"title":       `chest pain <script>alert("x")</script>`,
		"description": `<b>acute</b> onset`,
	}
	out := sanitizeCase(doc)
	assert.Equal(t, "chest pain ", out["title"])
	assert.Equal(t, "<b>acute</b> onset", out["description"])
	// original untouched
	assert.Contains(t, doc["title"], "<script>")
}

func TestSanitizeCaseNested(t *testing.T) {
	doc := mdb.CaseDoc{
		"patient": bson.D{
			{Key: "name", Value: `<script>alert(1)</script>Jo`},
			{Key: "age", Value: int32(42)},
		},
		"notes": bson.A{`<script>bad()</script>first`, "second"},
	}
	out := sanitizeCase(doc)

	patient, ok := out["patient"].(bson.D)
	require.True(t, ok)
	assert.Equal(t, "name", patient[0].Key)
	assert.Equal(t, "Jo", patient[0].Value)
	assert.Equal(t, int32(42), patient[1].Value)

	notes, ok := out["notes"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, "first", notes[0])
	assert.Equal(t, "second", notes[1])
}

func TestSanitizeCaseNonStringsUntouched(t *testing.T) {
	doc := mdb.CaseDoc{
		"score":  3.5,
		"count":  int64(9),
		"active": true,
		"none":   nil,
	}
	out := sanitizeCase(doc)
	assert.Equal(t, 3.5, out["score"])
	assert.Equal(t, int64(9), out["count"])
	assert.Equal(t, true, out["active"])
	assert.Nil(t, out["none"])
}

func TestSanitizeCaseJSONShapes(t *testing.T) {
	// loader output uses plain maps/slices rather than bson types
	doc := mdb.CaseDoc{
		"meta": map[string]any{
			"tags": []any{`<script>x</script>resp`, "cardio"},
		},
	}
	out := sanitizeCase(doc)
	meta, ok := out["meta"].(bson.M)
	require.True(t, ok)
	tags, ok := meta["tags"].([]any)
	require.True(t, ok)
	assert.Equal(t, "resp", tags[0])
	assert.Equal(t, "cardio", tags[1])
}
