package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName     = "orders"
	defaultOrderLinesTableName = "order_lines"
	ordersUserIDIndex          = "user_id-index"
	ordersEventIDIndex         = "event_id-index"
	ordersChargeIDIndex        = "charge_id-index"
	orderLinesOrderIDIndex     = "order_id-index"
)

type eventDayItem struct {
	Date        string `dynamodbav:"date"`
	Description string `dynamodbav:"description,omitempty"`
}

type paymentInfoItem struct {
	Status          string `dynamodbav:"status,omitempty"`
	StatusDetail    string `dynamodbav:"status_detail,omitempty"`
	PixQRCode       string `dynamodbav:"pix_qr_code,omitempty"`
	PixQRCodeBase64 string `dynamodbav:"pix_qr_code_base64,omitempty"`
	PixTicketURL    string `dynamodbav:"pix_ticket_url,omitempty"`
	BoletoURL       string `dynamodbav:"boleto_url,omitempty"`
	BoletoBarcode   string `dynamodbav:"boleto_barcode,omitempty"`
	CheckoutURL     string `dynamodbav:"checkout_url,omitempty"`
	ExpiresAt       string `dynamodbav:"expires_at,omitempty"`
}

type orderItem struct {
	ID              string          `dynamodbav:"id"`
	UserID          string          `dynamodbav:"user_id"`
	EventID         string          `dynamodbav:"event_id"`
	CreatedAt       string          `dynamodbav:"created_at"`
	IsPaid          bool            `dynamodbav:"is_paid"`
	Car             string          `dynamodbav:"car,omitempty"`
	CarClass        string          `dynamodbav:"car_class,omitempty"`
	Number          int             `dynamodbav:"number,omitempty"`
	Days            []eventDayItem  `dynamodbav:"days,omitempty"`
	PaymentMethod   string          `dynamodbav:"payment_method,omitempty"`
	FirstDriverName string          `dynamodbav:"first_driver_name,omitempty"`
	IsFirstDriver   bool            `dynamodbav:"is_first_driver"`
	ChargeID        string          `dynamodbav:"charge_id,omitempty"`
	Payment         paymentInfoItem `dynamodbav:"payment,omitempty"`
}

type orderLineItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	ProductID  string `dynamodbav:"product_id"`
	PriceCents int64  `dynamodbav:"price_cents"`
	Quantity   int    `dynamodbav:"quantity"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order and OrderLine entities in DynamoDB.
//
// Table requirements:
//   - orders: PK id (string); GSIs user_id-index, event_id-index,
//     charge_id-index
//   - order_lines: PK id (string); GSI order_id-index
//
// The repository also owns the two storage-level critical sections of the
// payment core: the transactional stock reservation and the conditional
// payment-state write.

type OrderDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	linesTableName  string
	productsTable   string
	consistentReads bool
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		linesTableName:  getenvDefault("ORDER_LINES_TABLE", defaultOrderLinesTableName),
		productsTable:   getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		consistentReads: true,
	}
}

// CreateWithReservation writes the order, its lines and every conditional
// stock decrement as one TransactWriteItems call. Either everything commits
// or nothing does; a decrement whose quantity condition fails cancels the
// transaction and surfaces as interfaces.ErrInventoryExhausted.
func (r *OrderDynamoRepository) CreateWithReservation(ctx context.Context, o entities.Order, lines []entities.OrderLine, decrements []interfaces.StockDecrement) error {
	orderAV, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}

	items := make([]types.TransactWriteItem, 0, 1+len(lines)+len(decrements))
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                orderAV,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		},
	})

	for _, l := range lines {
		lineAV, err := attributevalue.MarshalMap(toOrderLineItem(l))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.linesTableName),
				Item:      lineAV,
			},
		})
	}

	decrementOffset := len(items)
	for _, d := range decrements {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.productsTable),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: d.ProductID}},
				UpdateExpression:    aws.String("SET quantity = quantity - :q"),
				ConditionExpression: aws.String("attribute_exists(id) AND quantity >= :q"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":q": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", d.Quantity)},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for i, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" && i >= decrementOffset {
					return interfaces.ErrInventoryExhausted
				}
			}
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(r.consistentReads),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByChargeID(ctx context.Context, chargeID string) (entities.Order, error) {
	orders, err := r.queryOrders(ctx, ordersChargeIDIndex, "charge_id = :v", chargeID)
	if err != nil {
		return entities.Order{}, err
	}
	if len(orders) == 0 {
		return entities.Order{}, nil
	}
	return orders[0], nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.queryOrders(ctx, ordersUserIDIndex, "user_id = :v", userID)
}

func (r *OrderDynamoRepository) ListByEventID(ctx context.Context, eventID string) ([]entities.Order, error) {
	return r.queryOrders(ctx, ordersEventIDIndex, "event_id = :v", eventID)
}

func (r *OrderDynamoRepository) queryOrders(ctx context.Context, index, keyCondition, value string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListLines(ctx context.Context, orderID string) ([]entities.OrderLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTableName),
		IndexName:              aws.String(orderLinesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	lines := make([]entities.OrderLine, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		lines = append(lines, fromOrderLineItem(it))
	}
	return lines, nil
}

// UpdatePaymentInfo writes the payment subrecord, the charge id and the paid
// flag in one conditional update guarded by is_paid = false. Once the latch
// is set every further write lands on the condition and comes back as
// interfaces.ErrOrderAlreadyPaid, so settled orders are immutable here.
func (r *OrderDynamoRepository) UpdatePaymentInfo(ctx context.Context, orderID string, info entities.PaymentInfo, isPaid bool, paymentMethod string) error {
	paymentAV, err := attributevalue.MarshalMap(toPaymentInfoItem(info))
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: orderID}},
		UpdateExpression:    aws.String("SET payment = :p, charge_id = :cid, is_paid = :paid, payment_method = :m"),
		ConditionExpression: aws.String("attribute_exists(id) AND is_paid = :unpaid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p":      &types.AttributeValueMemberM{Value: paymentAV},
			":cid":    &types.AttributeValueMemberS{Value: info.ChargeID},
			":paid":   &types.AttributeValueMemberBOOL{Value: isPaid},
			":m":      &types.AttributeValueMemberS{Value: paymentMethod},
			":unpaid": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return interfaces.ErrOrderAlreadyPaid
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, orderID string) error {
	lines, err := r.ListLines(ctx, orderID)
	if err != nil {
		return err
	}
	for _, l := range lines {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.linesTableName),
			Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: l.ID}},
		})
		if err != nil {
			return err
		}
	}

	// Deletion is only offered pre-payment; the condition backs the use-case
	// check against a webhook racing the delete.
	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: orderID}},
		ConditionExpression: aws.String("is_paid = :unpaid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unpaid": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return interfaces.ErrOrderAlreadyPaid
		}
		return err
	}
	return nil
}

func toOrderItem(o entities.Order) orderItem {
	days := make([]eventDayItem, 0, len(o.Days))
	for _, d := range o.Days {
		days = append(days, eventDayItem{Date: d.Date, Description: d.Description})
	}
	return orderItem{
		ID:              o.ID,
		UserID:          o.UserID,
		EventID:         o.EventID,
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339Nano),
		IsPaid:          o.IsPaid,
		Car:             o.Car,
		CarClass:        o.CarClass,
		Number:          o.Number,
		Days:            days,
		PaymentMethod:   o.PaymentMethod,
		FirstDriverName: o.FirstDriverName,
		IsFirstDriver:   o.IsFirstDriver,
		ChargeID:        o.Payment.ChargeID,
		Payment:         toPaymentInfoItem(o.Payment),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	days := make([]entities.EventDay, 0, len(it.Days))
	for _, d := range it.Days {
		days = append(days, entities.EventDay{Date: d.Date, Description: d.Description})
	}
	return entities.Order{
		ID:              it.ID,
		UserID:          it.UserID,
		EventID:         it.EventID,
		CreatedAt:       createdAt,
		IsPaid:          it.IsPaid,
		Car:             it.Car,
		CarClass:        it.CarClass,
		Number:          it.Number,
		Days:            days,
		PaymentMethod:   it.PaymentMethod,
		FirstDriverName: it.FirstDriverName,
		IsFirstDriver:   it.IsFirstDriver,
		Payment:         fromPaymentInfoItem(it.ChargeID, it.Payment),
	}
}

func toPaymentInfoItem(p entities.PaymentInfo) paymentInfoItem {
	return paymentInfoItem{
		Status:          string(p.Status),
		StatusDetail:    p.StatusDetail,
		PixQRCode:       p.PixQRCode,
		PixQRCodeBase64: p.PixQRCodeBase64,
		PixTicketURL:    p.PixTicketURL,
		BoletoURL:       p.BoletoURL,
		BoletoBarcode:   p.BoletoBarcode,
		CheckoutURL:     p.CheckoutURL,
		ExpiresAt:       p.ExpiresAt,
	}
}

func fromPaymentInfoItem(chargeID string, it paymentInfoItem) entities.PaymentInfo {
	return entities.PaymentInfo{
		ChargeID:        chargeID,
		Status:          entities.ChargeStatus(it.Status),
		StatusDetail:    it.StatusDetail,
		PixQRCode:       it.PixQRCode,
		PixQRCodeBase64: it.PixQRCodeBase64,
		PixTicketURL:    it.PixTicketURL,
		BoletoURL:       it.BoletoURL,
		BoletoBarcode:   it.BoletoBarcode,
		CheckoutURL:     it.CheckoutURL,
		ExpiresAt:       it.ExpiresAt,
	}
}

func toOrderLineItem(l entities.OrderLine) orderLineItem {
	return orderLineItem{
		ID:         l.ID,
		OrderID:    l.OrderID,
		ProductID:  l.ProductID,
		PriceCents: l.PriceCents,
		Quantity:   l.Quantity,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderLineItem(it orderLineItem) entities.OrderLine {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.OrderLine{
		ID:         it.ID,
		OrderID:    it.OrderID,
		ProductID:  it.ProductID,
		PriceCents: it.PriceCents,
		Quantity:   it.Quantity,
		CreatedAt:  createdAt,
	}
}
