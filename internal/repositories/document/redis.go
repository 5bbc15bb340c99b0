package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/common/uuid"
	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/realtime"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// Key prefixes for Redis
	docKeyPrefix        = "doc:"
	collectionKeyPrefix = "collection:"
)

// Config holds configuration for the Redis document repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Publisher receives a change event after every committed write; optional
	Publisher realtime.Publisher

	Clock         clock.Clock
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	publisher     realtime.Publisher
	clock         clock.Clock
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// NewRedis creates a new Redis-backed document repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo := &redisRepository{
		client:        cfg.RedisClient,
		publisher:     cfg.Publisher,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logging.OrNop(cfg.Logger),
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.New()
	}

	return repo, nil
}

func docKey(collection, id string) string {
	return fmt.Sprintf("%s%s:%s", docKeyPrefix, collection, id)
}

func collectionKey(collection string) string {
	return fmt.Sprintf("%s%s", collectionKeyPrefix, collection)
}

// List loads every document of the collection, then filters, orders and limits
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.Collection == "" {
		return nil, errors.New("input and collection cannot be empty")
	}

	ids, err := r.client.ZRange(ctx, collectionKey(input.Collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", input.Collection, err)
	}

	if len(ids) == 0 {
		return &ListOutput{
			Documents: []*models.Document{},
		}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(input.Collection, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", input.Collection, err)
	}

	records := make([]*record, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Document was deleted between reading the index and loading it
			continue
		}

		doc, fields, err := decodeDocument(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s %s: %w", input.Collection, ids[i], err)
		}

		rec := &record{doc: doc, fields: fields}
		if matchesAll(rec, input.Filters) {
			records = append(records, rec)
		}
	}

	if len(input.Orders) > 0 {
		slices.SortStableFunc(records, func(a, b *record) int {
			return compareRecords(a, b, input.Orders)
		})
	}

	total := len(records)
	if input.Limit > 0 && len(records) > input.Limit {
		records = records[:input.Limit]
	}

	docs := make([]*models.Document, len(records))
	for i, rec := range records {
		docs[i] = rec.doc
	}

	return &ListOutput{
		Documents: docs,
		Total:     total,
	}, nil
}

// Get retrieves a document by collection and ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*models.Document, error) {
	if input == nil || input.Collection == "" || input.ID == "" {
		return nil, errors.New("input, collection and ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, docKey(input.Collection, input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s %s: %w", input.Collection, input.ID, err)
	}

	doc, _, err := decodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s %s: %w", input.Collection, input.ID, err)
	}

	return doc, nil
}

// Create stores a new document and indexes it in its collection
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*models.Document, error) {
	if input == nil || input.Collection == "" {
		return nil, errors.New("input and collection cannot be empty")
	}

	data, err := encodeFields(input.Fields)
	if err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = r.uuidGenerator.NewID()
	}

	now := r.clock.Now()
	doc := &models.Document{
		ID:         id,
		Collection: input.Collection,
		CreatedAt:  now,
		UpdatedAt:  now,
		Data:       data,
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	created, err := r.client.SetNX(ctx, docKey(input.Collection, id), docJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", input.Collection, err)
	}
	if !created {
		return nil, ErrAlreadyExists
	}

	err = r.client.ZAdd(ctx, collectionKey(input.Collection), redis.Z{
		Score:  float64(now.UnixNano()),
		Member: id,
	}).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to index %s %s: %w", input.Collection, id, err)
	}

	r.publish(ctx, models.ChangeOperationCreate, doc)

	return doc, nil
}

// Update merges fields into the stored document inside a WATCH transaction
func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*models.Document, error) {
	if input == nil || input.Collection == "" || input.ID == "" {
		return nil, errors.New("input, collection and ID cannot be empty")
	}

	key := docKey(input.Collection, input.ID)
	var updated *models.Document

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrNotFound
			}
			return err
		}

		doc, fields, err := decodeDocument(raw)
		if err != nil {
			return err
		}

		for name, value := range input.Fields {
			fields[name] = value
		}

		data, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("failed to marshal fields: %w", err)
		}
		doc.Data = data
		doc.UpdatedAt = r.clock.Now()

		docJSON, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, docJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = doc
		return nil
	}, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update %s %s: %w", input.Collection, input.ID, err)
	}

	r.publish(ctx, models.ChangeOperationUpdate, updated)

	return updated, nil
}

// Delete removes a document and its index entry
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.Collection == "" || input.ID == "" {
		return errors.New("input, collection and ID cannot be empty")
	}

	doc, err := r.Get(ctx, &GetInput{
		Collection: input.Collection,
		ID:         input.ID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, docKey(input.Collection, input.ID))
	pipe.ZRem(ctx, collectionKey(input.Collection), input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", input.Collection, input.ID, err)
	}

	r.publish(ctx, models.ChangeOperationDelete, doc)

	return nil
}

// publish reports a committed write; failures are logged since the write stands
func (r *redisRepository) publish(ctx context.Context, op models.ChangeOperation, doc *models.Document) {
	if r.publisher == nil {
		return
	}

	event := &models.ChangeEvent{
		Operation:  op,
		Collection: doc.Collection,
		DocumentID: doc.ID,
		Document:   doc,
		Timestamp:  r.clock.Now(),
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.Warn("failed to publish change event",
			zap.String("collection", doc.Collection),
			zap.String("document_id", doc.ID),
			zap.String("operation", string(op)),
			zap.Error(err))
	}
}

func matchesAll(rec *record, filters []Filter) bool {
	for _, f := range filters {
		if !rec.matches(f) {
			return false
		}
	}
	return true
}

func encodeFields(fields any) (json.RawMessage, error) {
	if fields == nil {
		return json.RawMessage("{}"), nil
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields: %w", err)
	}

	var probe map[string]any
	if err := json.Unmarshal(data, &probe); err != nil || probe == nil {
		return nil, ErrInvalidFields
	}

	return data, nil
}

func decodeDocument(raw string) (*models.Document, map[string]any, error) {
	var doc models.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, nil, err
	}

	fields := map[string]any{}
	if len(doc.Data) > 0 {
		if err := json.Unmarshal(doc.Data, &fields); err != nil {
			return nil, nil, err
		}
	}
	if fields == nil {
		fields = map[string]any{}
	}

	return &doc, fields, nil
}
