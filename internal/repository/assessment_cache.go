package repository

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"examsense/internal/model"
)

// cachedAssessmentRepository is a read-through cache in front of the gorm
// repository for the participant-facing public-id lookup, which runs on
// every bootstrap, duplicate check, and submission. Published assessments
// are immutable apart from status transitions, so a short TTL plus explicit
// invalidation on UpdateStatus keeps the cache honest.
type cachedAssessmentRepository struct {
	inner  AssessmentRepository
	client *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
}

// NewCachedAssessmentRepository wraps inner with a redis cache. A nil client
// disables caching and returns inner unchanged.
func NewCachedAssessmentRepository(inner AssessmentRepository, client *redis.Client, ttl time.Duration) AssessmentRepository {
	if client == nil {
		return inner
	}
	return &cachedAssessmentRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (r *cachedAssessmentRepository) FindByPublicID(publicID string) (*model.Assessment, error) {
	ctx := context.Background()
	key := assessmentKey(publicID)

	if cached, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var assessment model.Assessment
		if err := json.Unmarshal(cached, &assessment); err == nil {
			return &assessment, nil
		}
		// Corrupt entry: drop it and fall through to the loader.
		r.client.Del(ctx, key)
	}

	result, err, _ := r.sf.Do(publicID, func() (interface{}, error) {
		// Re-check in case another goroutine filled the key meanwhile.
		if cached, err := r.client.Get(ctx, key).Bytes(); err == nil {
			var assessment model.Assessment
			if err := json.Unmarshal(cached, &assessment); err == nil {
				return &assessment, nil
			}
		}

		assessment, err := r.inner.FindByPublicID(publicID)
		if err != nil {
			return nil, err
		}
		// Drafts change until published; only the published snapshot is
		// worth caching.
		if assessment.Status == model.AssessmentStatusPublished {
			if payload, err := json.Marshal(assessment); err == nil {
				if err := r.client.Set(ctx, key, payload, r.ttlWithJitter()).Err(); err != nil {
					log.Warn().Err(err).Str("publicID", publicID).Msg("assessment cache write failed")
				}
			}
		}
		return assessment, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.Assessment), nil
}

// UpdateStatus invalidates the cached snapshot so participants observe the
// transition immediately instead of after TTL expiry.
func (r *cachedAssessmentRepository) UpdateStatus(id uint, status string) error {
	if err := r.inner.UpdateStatus(id, status); err != nil {
		return err
	}
	if assessment, err := r.inner.FindByID(id); err == nil {
		if err := r.client.Del(context.Background(), assessmentKey(assessment.PublicID)).Err(); err != nil {
			log.Warn().Err(err).Uint("assessmentID", id).Msg("assessment cache invalidation failed")
		}
	}
	return nil
}

func (r *cachedAssessmentRepository) Create(assessment *model.Assessment) error {
	return r.inner.Create(assessment)
}

func (r *cachedAssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	return r.inner.FindByID(id)
}

func (r *cachedAssessmentRepository) FindByIDWithQuestions(id uint) (*model.Assessment, error) {
	return r.inner.FindByIDWithQuestions(id)
}

func (r *cachedAssessmentRepository) FindAllWithQuestionCount(status string) ([]AssessmentWithCount, error) {
	return r.inner.FindAllWithQuestionCount(status)
}

func assessmentKey(publicID string) string {
	return "assessment:" + publicID
}

// ttlWithJitter spreads expirations by up to 10% so a burst of lookups does
// not refill the cache in lockstep.
func (r *cachedAssessmentRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(rand.Int63n(jitterMax+1))
}
