package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// ErrCorruptItem is returned when a stored attribute cannot be decoded.
// Reads fail instead of defaulting the value.
var ErrCorruptItem = errors.New("corrupt stored item")

var _ DynamoAPI = (*dynamodb.Client)(nil)

// timeLayout is fixed width so stored timestamps sort as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// itemDecoder decodes the string attributes of one item and keeps the first
// failure, so mappers can read every field and check once.
type itemDecoder struct {
	id  string
	err error
}

func (d *itemDecoder) fail(field, raw string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: id=%s field=%s value=%q: %v", ErrCorruptItem, d.id, field, raw, err)
	}
}

func (d *itemDecoder) decimalField(field, raw string) decimal.Decimal {
	v, err := parseDecimal(raw)
	if err != nil {
		d.fail(field, raw, err)
	}
	return v
}

func (d *itemDecoder) timeField(field, raw string) time.Time {
	v, err := parseTime(raw)
	if err != nil {
		d.fail(field, raw, err)
	}
	return v
}

// timePtrField treats an empty attribute as unset.
func (d *itemDecoder) timePtrField(field, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	v := d.timeField(field, raw)
	return &v
}
