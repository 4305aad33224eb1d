package repositories

import (
	"context"
	"time"

	"primecasa-catalog/internal/models"
	"primecasa-catalog/internal/query"
	"primecasa-catalog/pkg/database"
	"primecasa-catalog/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type propertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository() PropertyRepository {
	return &propertyRepository{
		collection: database.DB.Collection(database.PropertiesCollection),
	}
}

// filterFromPlan translates the plan's predicate set into a Mongo filter.
// Range predicates on the same field merge into one operator document.
func filterFromPlan(plan query.Plan) bson.M {
	filter := bson.M{}
	for _, p := range plan.Predicates {
		switch p.Op {
		case query.OpEq:
			filter[p.Field] = p.Value
		case query.OpGte, query.OpLte:
			ops, ok := filter[p.Field].(bson.M)
			if !ok {
				ops = bson.M{}
				filter[p.Field] = ops
			}
			ops["$"+string(p.Op)] = p.Value
		}
	}
	return filter
}

func (r *propertyRepository) Count(ctx context.Context, plan query.Plan) (int64, error) {
	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, filterFromPlan(plan))
	metrics.MongoOperationDuration.WithLabelValues("count_documents", database.PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", database.PropertiesCollection).Inc()
		return 0, err
	}
	return total, nil
}

func (r *propertyRepository) FindPage(ctx context.Context, plan query.Plan) ([]models.Property, error) {
	direction := 1
	if plan.Order.Descending {
		direction = -1
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: plan.Order.Field, Value: direction}}).
		SetSkip(int64(plan.Offset)).
		SetLimit(int64(plan.Limit))

	start := time.Now()
	cursor, err := r.collection.Find(ctx, filterFromPlan(plan), findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.PropertiesCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	start = time.Now()
	err = cursor.All(ctx, &properties)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", database.PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.PropertiesCollection).Inc()
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	start := time.Now()
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"property_id": id}).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.PropertiesCollection).Inc()
		return nil, err
	}
	return &property, nil
}
