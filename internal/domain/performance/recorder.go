package performance

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mwork/mwork-ads/internal/pkg/apperror"
)

const counterKeyPrefix = "ads:perf:"

// Recorder accumulates view/click counters in Redis so the tracking hot
// path never touches PostgreSQL. A background worker drains the counters
// into campaign_performances. When Redis is not configured the recorder
// writes straight through to the repository.
type Recorder struct {
	redis *redis.Client
	repo  Repository
}

// NewRecorder creates a counter recorder
func NewRecorder(redisClient *redis.Client, repo Repository) *Recorder {
	return &Recorder{redis: redisClient, repo: repo}
}

// TrackView counts one ad view for the campaign today
func (r *Recorder) TrackView(ctx context.Context, campaignID uuid.UUID) error {
	return r.track(ctx, campaignID, "views")
}

// TrackClick counts one ad click for the campaign today
func (r *Recorder) TrackClick(ctx context.Context, campaignID uuid.UUID) error {
	return r.track(ctx, campaignID, "clicks")
}

func (r *Recorder) track(ctx context.Context, campaignID uuid.UUID, field string) error {
	day := time.Now().UTC().Truncate(24 * time.Hour)

	if r.redis == nil {
		var views, clicks int64
		if field == "views" {
			views = 1
		} else {
			clicks = 1
		}
		return r.repo.AddCounters(ctx, campaignID, day, views, clicks)
	}

	key := counterKey(campaignID, day)
	if err := r.redis.HIncrBy(ctx, key, field, 1).Err(); err != nil {
		return apperror.Transport("increment performance counter", err)
	}
	// Counters expire long after the flush interval; this only guards
	// against leaking keys when the worker is down for days.
	r.redis.Expire(ctx, key, 72*time.Hour)
	return nil
}

// Flush drains all pending counters into the repository. Keys are deleted
// before persisting; a crash between the two loses at most one interval of
// counters, which is acceptable for advertising metrics.
func (r *Recorder) Flush(ctx context.Context) (int, error) {
	if r.redis == nil {
		return 0, nil
	}

	var (
		flushed int
		cursor  uint64
	)
	for {
		keys, next, err := r.redis.Scan(ctx, cursor, counterKeyPrefix+"*", 100).Result()
		if err != nil {
			return flushed, apperror.Transport("scan performance counters", err)
		}

		for _, key := range keys {
			campaignID, day, err := parseCounterKey(key)
			if err != nil {
				// Foreign key in our namespace; drop it.
				r.redis.Del(ctx, key)
				continue
			}

			fields, err := r.redis.HGetAll(ctx, key).Result()
			if err != nil {
				return flushed, apperror.Transport("read performance counter", err)
			}
			if err := r.redis.Del(ctx, key).Err(); err != nil {
				return flushed, apperror.Transport("clear performance counter", err)
			}

			views, _ := strconv.ParseInt(fields["views"], 10, 64)
			clicks, _ := strconv.ParseInt(fields["clicks"], 10, 64)
			if views == 0 && clicks == 0 {
				continue
			}

			if err := r.repo.AddCounters(ctx, campaignID, day, views, clicks); err != nil {
				// Put the counters back so a repository outage delays the
				// flush instead of dropping an interval of data.
				r.requeue(ctx, key, views, clicks)
				return flushed, err
			}
			flushed++
		}

		cursor = next
		if cursor == 0 {
			return flushed, nil
		}
	}
}

func (r *Recorder) requeue(ctx context.Context, key string, views, clicks int64) {
	if views > 0 {
		r.redis.HIncrBy(ctx, key, "views", views)
	}
	if clicks > 0 {
		r.redis.HIncrBy(ctx, key, "clicks", clicks)
	}
	r.redis.Expire(ctx, key, 72*time.Hour)
}

func counterKey(campaignID uuid.UUID, day time.Time) string {
	return counterKeyPrefix + campaignID.String() + ":" + day.Format(dateLayout)
}

func parseCounterKey(key string) (uuid.UUID, time.Time, error) {
	rest := strings.TrimPrefix(key, counterKeyPrefix)
	idx := strings.LastIndex(rest, ":")
	if idx < 0 {
		return uuid.Nil, time.Time{}, apperror.Validation("performance", "counter_key", "malformed key")
	}

	campaignID, err := uuid.Parse(rest[:idx])
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	day, err := time.Parse(dateLayout, rest[idx+1:])
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	return campaignID, day, nil
}
