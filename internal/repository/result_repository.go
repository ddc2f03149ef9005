package repository

import (
	"context"

	"assessment-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("assessment_results")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.AssessmentResult) error {
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *ResultRepository) FindByID(ctx context.Context, id string) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *ResultRepository) FindByUserAndInventory(ctx context.Context, userID, inventory string) ([]models.AssessmentResult, error) {
	return r.find(ctx, bson.M{"user_id": userID, "inventory": inventory})
}

func (r *ResultRepository) find(ctx context.Context, filter bson.M) ([]models.AssessmentResult, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.AssessmentResult
	for cur.Next(ctx) {
		var res models.AssessmentResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
