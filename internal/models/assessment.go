package models

import (
	"time"

	"assessment-service/internal/evaluation"
)

// Inventory identifiers accepted by the evaluate and question-bank routes.
const (
	InventorySixteenP = "16p"
	InventoryBigFive  = "bigfive"
	InventoryHigh5    = "high5"
	InventoryRiasec   = "riasec"
)

// AssessmentResult is the stored envelope around one evaluation output.
// Exactly one of the four result fields is set, matching Inventory. The
// result is written once and never mutated; report generation reads it back
// verbatim.
type AssessmentResult struct {
	ID        string                     `bson:"_id,omitempty" json:"id"`
	UserID    string                     `bson:"user_id" json:"user_id"`
	Inventory string                     `bson:"inventory" json:"inventory"`
	SixteenP  *evaluation.SixteenPResult `bson:"sixteenp,omitempty" json:"sixteenp,omitempty"`
	BigFive   *evaluation.BigFiveResult  `bson:"bigfive,omitempty" json:"bigfive,omitempty"`
	High5     *evaluation.High5Result    `bson:"high5,omitempty" json:"high5,omitempty"`
	Riasec    *evaluation.RiasecResult   `bson:"riasec,omitempty" json:"riasec,omitempty"`
	CreatedAt time.Time                  `bson:"created_at" json:"created_at"`
}

// EvaluateRequest is the payload of the evaluate endpoint. Keys follow the
// "q{id}" convention of the inventory's question bank.
type EvaluateRequest struct {
	Responses map[string]int `json:"responses" binding:"required"`
}
