package repository

import (
	"context"
	"time"

	"storefront_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCheckoutStateTableName = "checkout_state"

type checkoutStateItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CheckoutStateDynamoRepository stores draft snapshots as opaque strings.
//
// Table requirements:
//   - PK: key (string)
type CheckoutStateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutStateStorage = (*CheckoutStateDynamoRepository)(nil)

func NewCheckoutStateDynamoRepository(ddb *dynamodb.Client) *CheckoutStateDynamoRepository {
	return &CheckoutStateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKOUT_STATE_TABLE", defaultCheckoutStateTableName),
	}
}

func (r *CheckoutStateDynamoRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stateKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it checkoutStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return []byte(it.Value), true, nil
}

// Set overwrites unconditionally; the last write of a session wins.
func (r *CheckoutStateDynamoRepository) Set(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(checkoutStateItem{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CheckoutStateDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stateKey(key),
	})
	return err
}

func stateKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: key},
	}
}
