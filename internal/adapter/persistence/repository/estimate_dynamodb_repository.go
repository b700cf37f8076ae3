package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultEstimatesTableName = "estimates"

type areaItem struct {
	Room          string `dynamodbav:"room,omitempty"`
	Category      string `dynamodbav:"category"`
	SquareFootage string `dynamodbav:"square_footage"`
}

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Unit        string `dynamodbav:"unit,omitempty"`
	Kind        string `dynamodbav:"kind,omitempty"`
	UnitCost    string `dynamodbav:"unit_cost"`
	Quantity    string `dynamodbav:"quantity"`
	BundleName  string `dynamodbav:"bundle_name"`
}

type areaLineItem struct {
	Room          string `dynamodbav:"room,omitempty"`
	Category      string `dynamodbav:"category"`
	SquareFootage string `dynamodbav:"square_footage"`
	Rate          string `dynamodbav:"rate"`
	Cost          string `dynamodbav:"cost"`
}

type bundleTotalItem struct {
	Name      string `dynamodbav:"name"`
	Subtotal  string `dynamodbav:"subtotal"`
	Included  bool   `dynamodbav:"included"`
	ItemCount int    `dynamodbav:"item_count"`
}

type totalsItem struct {
	AreaLines         []areaLineItem    `dynamodbav:"area_lines"`
	AreaSubtotal      string            `dynamodbav:"area_subtotal"`
	Bundles           []bundleTotalItem `dynamodbav:"bundles"`
	BaseSubtotal      string            `dynamodbav:"base_subtotal"`
	ProfitAmount      string            `dynamodbav:"profit_amount"`
	ContingencyAmount string            `dynamodbav:"contingency_amount"`
	GrandTotal        string            `dynamodbav:"grand_total"`
}

// Money and footage are stored as decimal strings so they round-trip exactly.
type estimateItem struct {
	ID                    string            `dynamodbav:"id"`
	Name                  string            `dynamodbav:"name"`
	Status                string            `dynamodbav:"status"`
	Version               int64             `dynamodbav:"version"`
	Areas                 []areaItem        `dynamodbav:"areas"`
	RateTable             map[string]string `dynamodbav:"rate_table"`
	LineItems             []lineItemItem    `dynamodbav:"line_items"`
	BundleInclusion       map[string]bool   `dynamodbav:"bundle_inclusion"`
	ProfitPercentage      string            `dynamodbav:"profit_percentage"`
	ContingencyPercentage string            `dynamodbav:"contingency_percentage"`
	Totals                *totalsItem       `dynamodbav:"totals,omitempty"`
	PricedAt              string            `dynamodbav:"priced_at,omitempty"`
	FinalizedAt           string            `dynamodbav:"finalized_at,omitempty"`
	SupersededAt          string            `dynamodbav:"superseded_at,omitempty"`
	CreatedAt             string            `dynamodbav:"created_at"`
	UpdatedAt             string            `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Writes after creation are full-item puts guarded by the version attribute.

type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

// ListCreatedBefore relies on created_at being stored in a fixed-width UTC
// layout so string comparison matches time order.
func (r *EstimateDynamoRepository) ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]entities.Estimate, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cutoff": &types.AttributeValueMemberS{Value: formatTime(cutoff)},
		},
	})
}

// Update replaces the stored estimate if its version still equals e.Version.
// The returned estimate carries the incremented version.
func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	expected := e.Version
	e.Version = expected + 1

	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, interfaces.ErrVersionConflict
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

// Delete removes the estimate only if it is still at the given version.
func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string, version int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(version, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrVersionConflict
		}
		return err
	}
	return nil
}

func (r *EstimateDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Estimate, error) {
	var estimates []entities.Estimate
	p := dynamodb.NewScanPaginator(r.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			e, err := fromEstimateItem(it)
			if err != nil {
				return nil, err
			}
			estimates = append(estimates, e)
		}
	}
	return estimates, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		ID:                    e.ID,
		Name:                  e.Name,
		Status:                string(e.Status),
		Version:               e.Version,
		RateTable:             make(map[string]string, len(e.RateTable)),
		BundleInclusion:       make(map[string]bool, len(e.BundleInclusion)),
		ProfitPercentage:      e.Rates.ProfitPercentage.String(),
		ContingencyPercentage: e.Rates.ContingencyPercentage.String(),
		PricedAt:              formatTimePtr(e.PricedAt),
		FinalizedAt:           formatTimePtr(e.FinalizedAt),
		SupersededAt:          formatTimePtr(e.SupersededAt),
		CreatedAt:             formatTime(e.CreatedAt),
		UpdatedAt:             formatTime(e.UpdatedAt),
	}
	for _, a := range e.Areas {
		it.Areas = append(it.Areas, areaItem{Room: a.Room, Category: string(a.Category), SquareFootage: a.SquareFootage.String()})
	}
	for c, rate := range e.RateTable {
		it.RateTable[string(c)] = rate.String()
	}
	for _, li := range e.LineItems {
		it.LineItems = append(it.LineItems, lineItemItem{
			ID:          li.ID,
			Description: li.Description,
			Unit:        li.Unit,
			Kind:        string(li.Kind),
			UnitCost:    li.UnitCost.String(),
			Quantity:    li.Quantity.String(),
			BundleName:  li.BundleName,
		})
	}
	for b, included := range e.BundleInclusion {
		it.BundleInclusion[b] = included
	}
	if e.Totals != nil {
		it.Totals = toTotalsItem(*e.Totals)
	}
	return it
}

func toTotalsItem(t costing.EstimateTotals) *totalsItem {
	out := &totalsItem{
		AreaSubtotal:      t.AreaSubtotal.String(),
		BaseSubtotal:      t.BaseSubtotal.String(),
		ProfitAmount:      t.ProfitAmount.String(),
		ContingencyAmount: t.ContingencyAmount.String(),
		GrandTotal:        t.GrandTotal.String(),
	}
	for _, l := range t.AreaLines {
		out.AreaLines = append(out.AreaLines, areaLineItem{
			Room:          l.Room,
			Category:      string(l.Category),
			SquareFootage: l.SquareFootage.String(),
			Rate:          l.Rate.String(),
			Cost:          l.Cost.String(),
		})
	}
	for _, b := range t.Bundles {
		out.Bundles = append(out.Bundles, bundleTotalItem{Name: b.Name, Subtotal: b.Subtotal.String(), Included: b.Included, ItemCount: b.ItemCount})
	}
	return out
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	d := &itemDecoder{id: it.ID}
	e := entities.Estimate{
		ID:              it.ID,
		Name:            it.Name,
		Status:          entities.EstimateStatus(it.Status),
		Version:         it.Version,
		RateTable:       make(costing.RateTable, len(it.RateTable)),
		BundleInclusion: make(costing.BundleInclusion, len(it.BundleInclusion)),
		Rates: costing.AdjustmentRates{
			ProfitPercentage:      d.decimalField("profit_percentage", it.ProfitPercentage),
			ContingencyPercentage: d.decimalField("contingency_percentage", it.ContingencyPercentage),
		},
		PricedAt:     d.timePtrField("priced_at", it.PricedAt),
		FinalizedAt:  d.timePtrField("finalized_at", it.FinalizedAt),
		SupersededAt: d.timePtrField("superseded_at", it.SupersededAt),
		CreatedAt:    d.timeField("created_at", it.CreatedAt),
		UpdatedAt:    d.timeField("updated_at", it.UpdatedAt),
	}
	for _, a := range it.Areas {
		e.Areas = append(e.Areas, costing.AreaRecord{Room: a.Room, Category: costing.Category(a.Category), SquareFootage: d.decimalField("areas.square_footage", a.SquareFootage)})
	}
	for c, rate := range it.RateTable {
		e.RateTable[costing.Category(c)] = d.decimalField("rate_table."+c, rate)
	}
	for _, li := range it.LineItems {
		e.LineItems = append(e.LineItems, costing.LineItem{
			ID:          li.ID,
			Description: li.Description,
			Unit:        li.Unit,
			Kind:        costing.ItemKind(li.Kind),
			UnitCost:    d.decimalField("line_items.unit_cost", li.UnitCost),
			Quantity:    d.decimalField("line_items.quantity", li.Quantity),
			BundleName:  li.BundleName,
		})
	}
	for b, included := range it.BundleInclusion {
		e.BundleInclusion[b] = included
	}
	if it.Totals != nil {
		t := fromTotalsItem(d, *it.Totals)
		e.Totals = &t
	}
	if d.err != nil {
		return entities.Estimate{}, d.err
	}
	return e, nil
}

func fromTotalsItem(d *itemDecoder, it totalsItem) costing.EstimateTotals {
	t := costing.EstimateTotals{
		AreaSubtotal:      d.decimalField("totals.area_subtotal", it.AreaSubtotal),
		BundleSubtotals:   make(map[string]decimal.Decimal, len(it.Bundles)),
		BaseSubtotal:      d.decimalField("totals.base_subtotal", it.BaseSubtotal),
		ProfitAmount:      d.decimalField("totals.profit_amount", it.ProfitAmount),
		ContingencyAmount: d.decimalField("totals.contingency_amount", it.ContingencyAmount),
		GrandTotal:        d.decimalField("totals.grand_total", it.GrandTotal),
	}
	for _, l := range it.AreaLines {
		t.AreaLines = append(t.AreaLines, costing.AreaCostLine{
			Room:          l.Room,
			Category:      costing.Category(l.Category),
			SquareFootage: d.decimalField("totals.area_lines.square_footage", l.SquareFootage),
			Rate:          d.decimalField("totals.area_lines.rate", l.Rate),
			Cost:          d.decimalField("totals.area_lines.cost", l.Cost),
		})
	}
	for _, b := range it.Bundles {
		bt := costing.BundleTotal{Name: b.Name, Subtotal: d.decimalField("totals.bundles.subtotal", b.Subtotal), Included: b.Included, ItemCount: b.ItemCount}
		t.Bundles = append(t.Bundles, bt)
		t.BundleSubtotals[bt.Name] = bt.Subtotal
	}
	return t
}
