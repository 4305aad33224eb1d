package repositories

import (
	"context"
	"time"

	"primecasa-catalog/internal/models"
	"primecasa-catalog/pkg/database"
	"primecasa-catalog/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type agentRepository struct {
	collection *mongo.Collection
}

func NewAgentRepository() AgentRepository {
	return &agentRepository{
		collection: database.DB.Collection(database.AgentsCollection),
	}
}

func (r *agentRepository) FindByID(ctx context.Context, id string) (*models.Agent, error) {
	start := time.Now()
	var agent models.Agent
	err := r.collection.FindOne(ctx, bson.M{"agent_id": id}).Decode(&agent)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.AgentsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.AgentsCollection).Inc()
		return nil, err
	}
	return &agent, nil
}
