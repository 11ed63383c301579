// Package store persists player aggregates and loads team reference
// data from DynamoDB.
package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// PlayerStore keeps one item per player, keyed by the source site's
// player id. The whole aggregate is written in a single PutItem, which
// keeps per-player persistence atomic.
type PlayerStore struct {
	ddb   DynamoDBAPI
	table string
}

func NewPlayerStore(ddb DynamoDBAPI, table string) *PlayerStore {
	return &PlayerStore{ddb: ddb, table: table}
}

func (s *PlayerStore) LoadPlayerByExternalID(ctx context.Context, externalID string) (*model.Player, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"ExternalID": &types.AttributeValueMemberS{Value: externalID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get player %s: %w", externalID, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var p model.Player
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal player %s: %w", externalID, err)
	}
	return &p, nil
}

func (s *PlayerStore) Upsert(ctx context.Context, p *model.Player) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal player %s: %w", p.ExternalID, err)
	}
	item["UpdatedAt"] = &types.AttributeValueMemberN{
		Value: strconv.FormatInt(time.Now().Unix(), 10),
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put player %s: %w", p.ExternalID, err)
	}
	return nil
}
