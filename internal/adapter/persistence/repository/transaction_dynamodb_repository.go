package repository

import (
	"context"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "transactions"

type transactionItem struct {
	ID             string `dynamodbav:"id"`
	SessionID      string `dynamodbav:"session_id"`
	ProductID      string `dynamodbav:"product_id"`
	ProductName    string `dynamodbav:"product_name"`
	ProductPrice   int64  `dynamodbav:"product_price"`
	BaseFee        int64  `dynamodbav:"base_fee"`
	DeliveryFee    int64  `dynamodbav:"delivery_fee"`
	Amount         int64  `dynamodbav:"amount"`
	Currency       string `dynamodbav:"currency"`
	Status         string `dynamodbav:"status"`
	Gateway        string `dynamodbav:"gateway"`
	ProviderID     string `dynamodbav:"provider_id,omitempty"`
	ProviderStatus string `dynamodbav:"provider_status,omitempty"`
	CardBrand      string `dynamodbav:"card_brand,omitempty"`
	CardLast4      string `dynamodbav:"card_last4,omitempty"`
	CustomerEmail  string `dynamodbav:"customer_email,omitempty"`
	DeliveryName   string `dynamodbav:"delivery_name"`
	DeliveryCity   string `dynamodbav:"delivery_city"`
	ClientIP       string `dynamodbav:"client_ip,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// TransactionDynamoRepository persists Transaction records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:             t.ID,
		SessionID:      t.SessionID,
		ProductID:      t.ProductID,
		ProductName:    t.ProductName,
		ProductPrice:   t.ProductPrice,
		BaseFee:        t.BaseFee,
		DeliveryFee:    t.DeliveryFee,
		Amount:         t.Amount,
		Currency:       t.Currency,
		Status:         string(t.Status),
		Gateway:        t.Gateway,
		ProviderID:     t.ProviderID,
		ProviderStatus: t.ProviderStatus,
		CardBrand:      string(t.CardBrand),
		CardLast4:      t.CardLast4,
		CustomerEmail:  t.CustomerEmail,
		DeliveryName:   t.DeliveryName,
		DeliveryCity:   t.DeliveryCity,
		ClientIP:       t.ClientIP,
		CreatedAt:      t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Transaction{
		ID:             it.ID,
		SessionID:      it.SessionID,
		ProductID:      it.ProductID,
		ProductName:    it.ProductName,
		ProductPrice:   it.ProductPrice,
		BaseFee:        it.BaseFee,
		DeliveryFee:    it.DeliveryFee,
		Amount:         it.Amount,
		Currency:       it.Currency,
		Status:         entities.TransactionStatus(it.Status),
		Gateway:        it.Gateway,
		ProviderID:     it.ProviderID,
		ProviderStatus: it.ProviderStatus,
		CardBrand:      entities.CardBrand(it.CardBrand),
		CardLast4:      it.CardLast4,
		CustomerEmail:  it.CustomerEmail,
		DeliveryName:   it.DeliveryName,
		DeliveryCity:   it.DeliveryCity,
		ClientIP:       it.ClientIP,
		CreatedAt:      createdAt,
	}
}
