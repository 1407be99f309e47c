package moverecord

import (
	"context"
	"time"

	"github.com/HuXin0817/dots-chain/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const GameRecodeCollectionName = "game_recode"

var _ GameRecodeModel = (*customGameRecodeModel)(nil)

type (
	// GameRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameRecodeModel.
	GameRecodeModel interface {
		gameRecodeModel
		InsertMany(ctx context.Context, data ...*GameRecode) error
		FindByGameUid(ctx context.Context, uid message.GameUid) (*GameRecode, error)
		CountByBoardSize(ctx context.Context, BoardSize int) (int64, error)
	}

	customGameRecodeModel struct {
		*defaultGameRecodeModel
	}
)

// NewGameRecodeModel returns a model for the mongo.
func NewGameRecodeModel(url, db, collection string) GameRecodeModel {
	if collection == "" {
		collection = GameRecodeCollectionName
	}

	conn := mon.MustNewModel(url, db, collection)
	return &customGameRecodeModel{
		defaultGameRecodeModel: newDefaultGameRecodeModel(conn),
	}
}

func (m *customGameRecodeModel) InsertMany(ctx context.Context, data ...*GameRecode) error {
	if len(data) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]any, 0, len(data))
	for _, d := range data {
		if d.ID.IsZero() {
			d.ID = primitive.NewObjectID()
			d.CreateAt = now
			d.UpdateAt = now
		}
		docs = append(docs, d)
	}

	_, err := m.conn.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func (m *customGameRecodeModel) FindByGameUid(ctx context.Context, uid message.GameUid) (*GameRecode, error) {
	var data GameRecode

	err := m.conn.FindOne(ctx, &data, bson.M{"gameUid": uid})
	switch err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customGameRecodeModel) CountByBoardSize(ctx context.Context, BoardSize int) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{"boardSize": BoardSize})
}
