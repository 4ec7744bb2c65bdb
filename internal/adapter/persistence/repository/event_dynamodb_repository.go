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

const defaultEventsTableName = "events"

type eventItem struct {
	ID                   string         `dynamodbav:"id"`
	Title                string         `dynamodbav:"title"`
	Subtitle             string         `dynamodbav:"subtitle,omitempty"`
	ShortDescription     string         `dynamodbav:"short_description,omitempty"`
	Description          string         `dynamodbav:"description,omitempty"`
	Image                string         `dynamodbav:"image,omitempty"`
	TrackImage           string         `dynamodbav:"track_image,omitempty"`
	Regulation           string         `dynamodbav:"regulation,omitempty"`
	ExternalTickets      string         `dynamodbav:"external_tickets,omitempty"`
	ChatLink             string         `dynamodbav:"chat_link,omitempty"`
	MembershipRequired   bool           `dynamodbav:"membership_required"`
	RegistrationPossible bool           `dynamodbav:"registration_possible"`
	LastDay              string         `dynamodbav:"last_day,omitempty"`
	PossibleDays         []eventDayItem `dynamodbav:"possible_days,omitempty"`
	Result               string         `dynamodbav:"result,omitempty"`
	ResultClass          string         `dynamodbav:"result_class,omitempty"`
	ResultLap            string         `dynamodbav:"result_lap,omitempty"`
	CreatedAt            string         `dynamodbav:"created_at"`
}

// EventDynamoRepository persists Event entities in DynamoDB (PK: id).

type EventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventRepository = (*EventDynamoRepository)(nil)

func NewEventDynamoRepository(ddb *dynamodb.Client) *EventDynamoRepository {
	return &EventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVENTS_TABLE", defaultEventsTableName),
	}
}

func (r *EventDynamoRepository) Create(ctx context.Context, e entities.Event) (entities.Event, error) {
	av, err := attributevalue.MarshalMap(toEventItem(e))
	if err != nil {
		return entities.Event{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return entities.Event{}, err
	}
	return e, nil
}

func (r *EventDynamoRepository) GetByID(ctx context.Context, id string) (entities.Event, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return entities.Event{}, err
	}
	if len(out.Item) == 0 {
		return entities.Event{}, nil
	}
	var it eventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Event{}, err
	}
	return fromEventItem(it), nil
}

func (r *EventDynamoRepository) List(ctx context.Context) ([]entities.Event, error) {
	events := make([]entities.Event, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it eventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			events = append(events, fromEventItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return events, nil
}

func (r *EventDynamoRepository) Update(ctx context.Context, e entities.Event) (entities.Event, error) {
	av, err := attributevalue.MarshalMap(toEventItem(e))
	if err != nil {
		return entities.Event{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		return entities.Event{}, err
	}
	return e, nil
}

func (r *EventDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	return err
}

func toEventItem(e entities.Event) eventItem {
	days := make([]eventDayItem, 0, len(e.PossibleDays))
	for _, d := range e.PossibleDays {
		days = append(days, eventDayItem{Date: d.Date, Description: d.Description})
	}
	return eventItem{
		ID:                   e.ID,
		Title:                e.Title,
		Subtitle:             e.Subtitle,
		ShortDescription:     e.ShortDescription,
		Description:          e.Description,
		Image:                e.Image,
		TrackImage:           e.TrackImage,
		Regulation:           e.Regulation,
		ExternalTickets:      e.ExternalTickets,
		ChatLink:             e.ChatLink,
		MembershipRequired:   e.MembershipRequired,
		RegistrationPossible: e.RegistrationPossible,
		LastDay:              e.LastDay,
		PossibleDays:         days,
		Result:               e.Result,
		ResultClass:          e.ResultClass,
		ResultLap:            e.ResultLap,
		CreatedAt:            e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEventItem(it eventItem) entities.Event {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	days := make([]entities.EventDay, 0, len(it.PossibleDays))
	for _, d := range it.PossibleDays {
		days = append(days, entities.EventDay{Date: d.Date, Description: d.Description})
	}
	return entities.Event{
		ID:                   it.ID,
		Title:                it.Title,
		Subtitle:             it.Subtitle,
		ShortDescription:     it.ShortDescription,
		Description:          it.Description,
		Image:                it.Image,
		TrackImage:           it.TrackImage,
		Regulation:           it.Regulation,
		ExternalTickets:      it.ExternalTickets,
		ChatLink:             it.ChatLink,
		MembershipRequired:   it.MembershipRequired,
		RegistrationPossible: it.RegistrationPossible,
		LastDay:              it.LastDay,
		PossibleDays:         days,
		Result:               it.Result,
		ResultClass:          it.ResultClass,
		ResultLap:            it.ResultLap,
		CreatedAt:            createdAt,
	}
}
