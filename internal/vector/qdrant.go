package vector

import (
	"context"
	"fmt"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"cmsapi/internal/config"
)

// QdrantIndex implements Index using a Qdrant collection over gRPC.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
	timeout    time.Duration
}

var _ Index = (*QdrantIndex)(nil)

// NewQdrant creates a Qdrant-backed index. The connection is established
// lazily; use EnsureCollection to verify reachability at startup.
func NewQdrant(cfg config.QdrantConfig) (*QdrantIndex, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: cfg.Host,
		Port: cfg.Port,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant client: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &QdrantIndex{
		client:     client,
		collection: cfg.Collection,
		timeout:    timeout,
	}, nil
}

// EnsureCollection creates the collection with the given vector size if it
// does not exist yet. Cosine distance matches the similarity scores the
// search API exposes.
func (q *QdrantIndex) EnsureCollection(ctx context.Context, vectorSize int) error {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	exists, err := q.client.CollectionExists(ctx, q.collection)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		return nil
	}

	if err := q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collection,
		VectorsConfig: &qdrant.VectorsConfig{
			Config: &qdrant.VectorsConfig_Params{
				Params: &qdrant.VectorParams{
					Size:     uint64(vectorSize),
					Distance: qdrant.Distance_Cosine,
				},
			},
		},
	}); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

func (q *QdrantIndex) Upsert(ctx context.Context, entry Entry) error {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewIDUUID(entry.ID),
				Vectors: qdrant.NewVectors(entry.Values...),
				Payload: payloadFromMetadata(entry.Metadata),
			},
		},
	})
	return err
}

func (q *QdrantIndex) Query(ctx context.Context, values []float32, topK int) ([]Match, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	limit := uint64(topK)
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collection,
		Query:          qdrant.NewQuery(values...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(points))
	for _, p := range points {
		matches = append(matches, Match{
			ID:       pointID(p.Id),
			Score:    p.Score,
			Metadata: metadataFromPayload(p.Payload),
		})
	}
	return matches, nil
}

func (q *QdrantIndex) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collection,
		Points:         qdrant.NewPointsSelector(qdrant.NewIDUUID(id)),
	})
	return err
}

func (q *QdrantIndex) Close() error {
	return q.client.Close()
}

func payloadFromMetadata(meta map[string]string) map[string]*qdrant.Value {
	payload := make(map[string]any, len(meta))
	for k, v := range meta {
		payload[k] = v
	}
	return qdrant.NewValueMap(payload)
}

func metadataFromPayload(payload map[string]*qdrant.Value) map[string]string {
	meta := make(map[string]string, len(payload))
	for k, v := range payload {
		meta[k] = v.GetStringValue()
	}
	return meta
}

func pointID(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	switch x := id.PointIdOptions.(type) {
	case *qdrant.PointId_Uuid:
		return x.Uuid
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", x.Num)
	}
	return ""
}
