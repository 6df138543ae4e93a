package vector

import (
	"testing"

	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
)

func TestPayloadRoundTrip(t *testing.T) {
	meta := map[string]string{
		"title":      "Intro to CMS",
		"slug":       "intro-to-cms",
		"status":     "draft",
		"created_at": "2024-01-02T03:04:05Z",
		"type":       "content",
	}

	payload := payloadFromMetadata(meta)
	assert.Len(t, payload, len(meta))
	assert.Equal(t, "intro-to-cms", payload["slug"].GetStringValue())

	back := metadataFromPayload(payload)
	assert.Equal(t, meta, back)
}

func TestPointID(t *testing.T) {
	assert.Equal(t, "", pointID(nil))
	assert.Equal(t, "abc-123", pointID(qdrant.NewIDUUID("abc-123")))
	assert.Equal(t, "42", pointID(qdrant.NewIDNum(42)))
}
