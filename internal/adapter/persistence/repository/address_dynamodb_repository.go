package repository

import (
	"context"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAddressesTableName = "addresses"
	addressesUserIDIndex      = "user_id-index"
)

type addressItem struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id"`
	Zipcode           string `dynamodbav:"zipcode,omitempty"`
	StreetAddress     string `dynamodbav:"street_address,omitempty"`
	AdditionalAddress string `dynamodbav:"additional_address,omitempty"`
	District          string `dynamodbav:"district,omitempty"`
	City              string `dynamodbav:"city,omitempty"`
	State             string `dynamodbav:"state,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

type AddressDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAddressRepository = (*AddressDynamoRepository)(nil)

func NewAddressDynamoRepository(ddb *dynamodb.Client) *AddressDynamoRepository {
	return &AddressDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADDRESSES_TABLE", defaultAddressesTableName),
	}
}

func (r *AddressDynamoRepository) Create(ctx context.Context, a entities.Address) (entities.Address, error) {
	av, err := attributevalue.MarshalMap(toAddressItem(a))
	if err != nil {
		return entities.Address{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return entities.Address{}, err
	}
	return a, nil
}

func (r *AddressDynamoRepository) GetByID(ctx context.Context, id string) (entities.Address, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return entities.Address{}, err
	}
	if len(out.Item) == 0 {
		return entities.Address{}, nil
	}
	var it addressItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Address{}, err
	}
	return fromAddressItem(it), nil
}

func (r *AddressDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Address, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(addressesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	addrs := make([]entities.Address, 0, len(out.Items))
	for _, raw := range out.Items {
		var it addressItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		addrs = append(addrs, fromAddressItem(it))
	}
	return addrs, nil
}

func (r *AddressDynamoRepository) Update(ctx context.Context, a entities.Address) (entities.Address, error) {
	av, err := attributevalue.MarshalMap(toAddressItem(a))
	if err != nil {
		return entities.Address{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		return entities.Address{}, err
	}
	return a, nil
}

func (r *AddressDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	return err
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{
		ID:                a.ID,
		UserID:            a.UserID,
		Zipcode:           a.Zipcode,
		StreetAddress:     a.StreetAddress,
		AdditionalAddress: a.AdditionalAddress,
		District:          a.District,
		City:              a.City,
		State:             a.State,
		CreatedAt:         a.CreatedAt.Format(time.RFC3339Nano),
	}
}

func fromAddressItem(it addressItem) entities.Address {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Address{
		ID:                it.ID,
		UserID:            it.UserID,
		Zipcode:           it.Zipcode,
		StreetAddress:     it.StreetAddress,
		AdditionalAddress: it.AdditionalAddress,
		District:          it.District,
		City:              it.City,
		State:             it.State,
		CreatedAt:         createdAt,
	}
}
