// Package eligibility implements the worker-state collaborator backed by
// Redis sets the platform maintains: per-facility limited audiences and
// block lists. The engine only reads them.
package eligibility

import (
	"context"
	"fmt"

	"care-shift-api/internal/models"
	"care-shift-api/internal/services"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Key layout:
//
//	worker:{workerID}:eligible:{jobType}   -> flag key, presence means eligible
//	facility:{facilityID}:audience:{jobType} -> set of worker IDs
//	facility:{facilityID}:blocked          -> set of worker IDs
func workerEligibleKey(workerID uuid.UUID, jobType models.JobType) string {
	return fmt.Sprintf("worker:%s:eligible:%s", workerID, jobType)
}

func facilityAudienceKey(facilityID uuid.UUID, jobType models.JobType) string {
	return fmt.Sprintf("facility:%s:audience:%s", facilityID, jobType)
}

func facilityBlockedKey(facilityID uuid.UUID) string {
	return fmt.Sprintf("facility:%s:blocked", facilityID)
}

// RedisService reads worker eligibility state from Redis.
type RedisService struct {
	client *redis.Client
}

// NewRedisService creates a new RedisService.
func NewRedisService(client *redis.Client) *RedisService {
	return &RedisService{client: client}
}

var _ services.EligibilityService = (*RedisService)(nil)

// IsEligibleForLimitedJob reports whether the worker is in the audience for
// the given limited job type.
func (s *RedisService) IsEligibleForLimitedJob(ctx context.Context, workerID uuid.UUID, jobType models.JobType) (bool, error) {
	n, err := s.client.Exists(ctx, workerEligibleKey(workerID, jobType)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check limited eligibility for worker %s: %w", workerID, err)
	}
	return n > 0, nil
}

// IsBlocked reports whether the facility has blocked the worker.
func (s *RedisService) IsBlocked(ctx context.Context, workerID, facilityID uuid.UUID) (bool, error) {
	blocked, err := s.client.SIsMember(ctx, facilityBlockedKey(facilityID), workerID.String()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check block list for facility %s: %w", facilityID, err)
	}
	return blocked, nil
}

// HasEligibleWorkers reports whether the facility has at least one worker in
// the limited audience for the job type.
func (s *RedisService) HasEligibleWorkers(ctx context.Context, facilityID uuid.UUID, jobType models.JobType) (bool, error) {
	n, err := s.client.SCard(ctx, facilityAudienceKey(facilityID, jobType)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check limited audience for facility %s: %w", facilityID, err)
	}
	return n > 0, nil
}
