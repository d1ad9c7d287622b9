package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"vibevoyager/internal/models"
)

// QlooServiceInterface resolves free-text tastes into cultural-affinity
// hints. Every method is best-effort: network, timeout, and decode failures
// are swallowed locally and surface as empty results. The main generation
// flow must never fail because this enrichment layer did.
type QlooServiceInterface interface {
	SearchEntities(ctx context.Context, query, entityType string, limit int) []models.QlooSearchHit
	SearchTags(ctx context.Context, query string, limit int) []models.QlooTagHit
	InsightsByEntities(ctx context.Context, ids []string, entityType string, limit int) []models.QlooInsight
	DestinationsFromVibes(ctx context.Context, vibes []string, max int) []models.QlooInsight
	TestConnection(ctx context.Context) bool
}

type QlooService struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

func NewQlooService(baseURL, apiKey string, logger *zap.Logger) QlooServiceInterface {
	return &QlooService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

func (q *QlooService) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", q.apiKey)

	start := time.Now()
	resp, err := q.client.Do(req)
	if err != nil {
		q.logger.Debug("qloo request failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	q.logger.Debug("qloo response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("qloo: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (q *QlooService) SearchEntities(ctx context.Context, query, entityType string, limit int) []models.QlooSearchHit {
	params := url.Values{}
	params.Set("query", query)
	params.Set("type", entityType)
	params.Set("limit", fmt.Sprintf("%d", limit))

	var body struct {
		Results []models.QlooSearchHit `json:"results"`
	}
	if err := q.get(ctx, "/search", params, &body); err != nil {
		return []models.QlooSearchHit{}
	}
	return body.Results
}

func (q *QlooService) SearchTags(ctx context.Context, query string, limit int) []models.QlooTagHit {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", fmt.Sprintf("%d", limit))

	var body struct {
		Tags []models.QlooTagHit `json:"tags"`
	}
	if err := q.get(ctx, "/v2/tags", params, &body); err != nil {
		return []models.QlooTagHit{}
	}
	return body.Tags
}

func (q *QlooService) InsightsByEntities(ctx context.Context, ids []string, entityType string, limit int) []models.QlooInsight {
	if len(ids) == 0 {
		return []models.QlooInsight{}
	}

	params := url.Values{}
	params.Set("filter.type", entityType)
	params.Set("signal.interests.entities", strings.Join(ids, ","))
	params.Set("limit", fmt.Sprintf("%d", limit))

	var body struct {
		Results []models.QlooInsight `json:"results"`
	}
	if err := q.get(ctx, "/v2/insights", params, &body); err != nil {
		return []models.QlooInsight{}
	}
	return body.Results
}

// DestinationsFromVibes resolves each taste to its first tag hit, then issues
// one batched insights query scoped to destination entities. Tastes that
// resolve to nothing are dropped; an empty tag set is a normal outcome, not a
// failure. Duplicate tag ids from distinct tastes are kept as-is.
func (q *QlooService) DestinationsFromVibes(ctx context.Context, vibes []string, max int) []models.QlooInsight {
	q.logger.Info("resolving vibes to destinations", zap.Strings("vibes", vibes))

	var tagIDs []string
	for _, vibe := range vibes {
		hits := q.SearchTags(ctx, vibe, 1)
		if len(hits) > 0 && hits[0].ID != "" {
			tagIDs = append(tagIDs, hits[0].ID)
		}
	}

	if len(tagIDs) == 0 {
		q.logger.Warn("no tag urns resolved", zap.Strings("vibes", vibes))
		return []models.QlooInsight{}
	}

	params := url.Values{}
	params.Set("filter.type", models.QlooEntityDestination)
	params.Set("signal.interests.tags", strings.Join(tagIDs, ","))
	params.Set("limit", fmt.Sprintf("%d", max))

	var body struct {
		Results []models.QlooInsight `json:"results"`
	}
	if err := q.get(ctx, "/v2/insights", params, &body); err != nil {
		return []models.QlooInsight{}
	}
	return body.Results
}

func (q *QlooService) TestConnection(ctx context.Context) bool {
	params := url.Values{}
	params.Set("query", "coffee")
	params.Set("type", models.QlooEntityPlace)
	params.Set("limit", "1")

	var body json.RawMessage
	return q.get(ctx, "/search", params, &body) == nil
}
