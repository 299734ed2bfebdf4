package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Price       int64  `dynamodbav:"price"`
	ImageURL    string `dynamodbav:"image_url"`
	Stock       int    `dynamodbav:"stock"`
	Position    *int   `dynamodbav:"position,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at,omitempty"`
}

// ProductDynamoRepository reads the catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - stock (number) is decremented in place, never below zero.
//   - position (number, optional) is the display order. Items without it
//     follow the positioned ones, ordered by id.
type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

// List scans the whole table. The catalog is small; results are in display
// order.
func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	var (
		items    []productItem
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortProductItems(items)
	products := make([]entities.Product, 0, len(items))
	for _, it := range items {
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

func sortProductItems(items []productItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.Position != nil && b.Position != nil && *a.Position != *b.Position:
			return *a.Position < *b.Position
		case a.Position != nil && b.Position == nil:
			return true
		case a.Position == nil && b.Position != nil:
			return false
		}
		return a.ID < b.ID
	})
}

func (r *ProductDynamoRepository) DecrementStock(ctx context.Context, id string) (entities.Product, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #stock > :zero"),
		UpdateExpression:    aws.String("SET #stock = #stock - :one, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero":       &types.AttributeValueMemberN{Value: "0"},
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stock":      "stock",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Product{}, nil
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		ImageURL:    it.ImageURL,
		Stock:       it.Stock,
	}
}
