package service

import (
	"context"
	"errors"
	"testing"

	"assessment-service/internal/evaluation"
)

func TestEvaluateRejectsUnknownInventory(t *testing.T) {
	s := NewAssessmentService(nil, nil, nil)

	_, err := s.Evaluate(context.Background(), "user-1", "enneagram", evaluation.Responses{})
	if !errors.Is(err, ErrUnknownInventory) {
		t.Errorf("Expected ErrUnknownInventory, got %v", err)
	}
}
