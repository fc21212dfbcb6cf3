package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"dippy_dump/internal/domain/game"
)

// MongoGameRepository reads the same three tables from a droidippy export kept
// as mongo collections, one document per row.
type MongoGameRepository struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewMongoGameRepository(log *zap.SugaredLogger, mongo *mongo.Database) *MongoGameRepository {
	return &MongoGameRepository{
		log:   log,
		mongo: mongo,
	}
}

func (g *MongoGameRepository) GetPhasesByGameID(ctx context.Context, gameID int64) ([]game.PhaseRow, error) {
	collection := g.mongo.Collection("gamephase")
	filter := bson.M{"game_id": gameID}
	opts := options.Find().
		SetSort(bson.D{{Key: "ordinal", Value: 1}}).
		SetProjection(bson.M{"id": 1, "name": 1, "type": 1})

	g.log.Debugf("find %s %v", collection.Name(), filter)
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, queryFailure("phases of game", gameID, err)
	}
	defer cursor.Close(ctx)

	var result []game.PhaseRow
	if err = cursor.All(ctx, &result); err != nil {
		return nil, queryFailure("phases of game", gameID, err)
	}
	return result, nil
}

func (g *MongoGameRepository) GetPositionsByPhaseID(ctx context.Context, phaseID int64) ([]game.PositionRow, error) {
	collection := g.mongo.Collection("gameposition")
	filter := bson.M{"phase_id": phaseID}

	g.log.Debugf("find %s %v", collection.Name(), filter)
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, queryFailure("positions of phase", phaseID, err)
	}
	defer cursor.Close(ctx)

	var result []game.PositionRow
	if err = cursor.All(ctx, &result); err != nil {
		return nil, queryFailure("positions of phase", phaseID, err)
	}
	return result, nil
}

func (g *MongoGameRepository) GetOrdersByPhaseID(ctx context.Context, phaseID int64) ([]game.OrderRow, error) {
	collection := g.mongo.Collection("gameorder")
	filter := bson.M{"phase_id": phaseID}

	g.log.Debugf("find %s %v", collection.Name(), filter)
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, queryFailure("orders of phase", phaseID, err)
	}
	defer cursor.Close(ctx)

	var result []game.OrderRow
	if err = cursor.All(ctx, &result); err != nil {
		return nil, queryFailure("orders of phase", phaseID, err)
	}
	return result, nil
}
