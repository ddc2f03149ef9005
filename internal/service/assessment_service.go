package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"assessment-service/internal/cache"
	"assessment-service/internal/evaluation"
	"assessment-service/internal/event"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnknownInventory is returned when the inventory identifier does not
// match one of the four supported inventories.
var ErrUnknownInventory = errors.New("unknown inventory")

// AssessmentService runs evaluations and owns their persistence. Cache and
// Publisher are optional; a nil value disables that integration.
type AssessmentService struct {
	Repo      *repository.ResultRepository
	Cache     *cache.ResultCache
	Publisher *event.EventPublisher
}

func NewAssessmentService(repo *repository.ResultRepository, resultCache *cache.ResultCache, publisher *event.EventPublisher) *AssessmentService {
	return &AssessmentService{Repo: repo, Cache: resultCache, Publisher: publisher}
}

// Evaluate scores the responses with the named inventory's evaluator, stores
// the resulting envelope and returns it. The evaluators themselves never
// fail; only an unknown inventory or a storage problem produces an error.
func (s *AssessmentService) Evaluate(ctx context.Context, userID, inventory string, responses evaluation.Responses) (*models.AssessmentResult, error) {
	record := &models.AssessmentResult{
		ID:        primitive.NewObjectID().Hex(),
		UserID:    userID,
		Inventory: inventory,
		CreatedAt: time.Now().UTC(),
	}

	switch inventory {
	case models.InventorySixteenP:
		r := evaluation.EvaluateSixteenP(responses)
		record.SixteenP = &r
	case models.InventoryBigFive:
		r := evaluation.EvaluateBigFive(responses)
		record.BigFive = &r
	case models.InventoryHigh5:
		r := evaluation.EvaluateHigh5(responses)
		record.High5 = &r
	case models.InventoryRiasec:
		r := evaluation.EvaluateRiasec(responses)
		record.Riasec = &r
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownInventory, inventory)
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.Save(ctx, record); err != nil {
			log.Printf("Failed to cache result %s: %v", record.ID, err)
		}
	}
	if s.Publisher != nil {
		s.Publisher.Publish("assessment.completed", map[string]interface{}{
			"result_id": record.ID,
			"user_id":   record.UserID,
			"inventory": record.Inventory,
		})
	}
	return record, nil
}

// GetResult fetches a stored result, cache first.
func (s *AssessmentService) GetResult(ctx context.Context, id string) (*models.AssessmentResult, error) {
	if s.Cache != nil {
		if result, err := s.Cache.Get(ctx, id); err == nil {
			return result, nil
		}
	}
	result, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.Save(ctx, result); err != nil {
			log.Printf("Failed to backfill cache for result %s: %v", id, err)
		}
	}
	return result, nil
}

func (s *AssessmentService) GetResultsByUser(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	return s.Repo.FindByUser(ctx, userID)
}

func (s *AssessmentService) GetResultsByUserAndInventory(ctx context.Context, userID, inventory string) ([]models.AssessmentResult, error) {
	return s.Repo.FindByUserAndInventory(ctx, userID, inventory)
}

// QuestionBank returns the static bank for an inventory.
func QuestionBank(inventory string) ([]evaluation.Question, bool) {
	switch inventory {
	case models.InventorySixteenP:
		return evaluation.SixteenPBank, true
	case models.InventoryBigFive:
		return evaluation.BigFiveBank, true
	case models.InventoryHigh5:
		return evaluation.High5Bank, true
	case models.InventoryRiasec:
		return evaluation.RiasecBank, true
	}
	return nil, false
}
