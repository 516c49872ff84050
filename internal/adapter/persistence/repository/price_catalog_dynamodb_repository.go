package repository

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"obra_gris/internal/domain/entities"
	"obra_gris/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPriceCatalogTableName = "price_catalog"

type catalogPriceItem struct {
	MaterialID string `dynamodbav:"material_id"`
	Price      string `dynamodbav:"price"`
	Source     string `dynamodbav:"source"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// PriceCatalogDynamoRepository persists reference prices in DynamoDB.
//
// Table requirements:
//   - PK: material_id (string)
//
// The catalog holds one row per material (a few dozen at most), so List is
// a paginated Scan.

type PriceCatalogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

// dynamoAPI is the subset of *dynamodb.Client used by the repository.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ interfaces.IPriceCatalogRepository = (*PriceCatalogDynamoRepository)(nil)

func NewPriceCatalogDynamoRepository(ddb *dynamodb.Client) *PriceCatalogDynamoRepository {
	return newPriceCatalogRepository(ddb)
}

func newPriceCatalogRepository(ddb dynamoAPI) *PriceCatalogDynamoRepository {
	return &PriceCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICE_CATALOG_TABLE", defaultPriceCatalogTableName),
	}
}

func (r *PriceCatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogPrice, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var prices []entities.CatalogPrice
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it catalogPriceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromCatalogPriceItem(it)
			if err != nil {
				log.Printf("[catalog][repository] skipping row material_id=%s err=%v", it.MaterialID, err)
				continue
			}
			prices = append(prices, p)
		}
	}
	return prices, nil
}

func (r *PriceCatalogDynamoRepository) GetByID(ctx context.Context, materialID string) (entities.CatalogPrice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"material_id": &types.AttributeValueMemberS{Value: materialID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogPrice{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogPrice{}, nil
	}

	var it catalogPriceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogPrice{}, err
	}
	return fromCatalogPriceItem(it)
}

// Upsert overwrites the catalog row of the material.
func (r *PriceCatalogDynamoRepository) Upsert(ctx context.Context, p entities.CatalogPrice) (entities.CatalogPrice, error) {
	av, err := attributevalue.MarshalMap(toCatalogPriceItem(p))
	if err != nil {
		return entities.CatalogPrice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CatalogPrice{}, err
	}
	return p, nil
}

func toCatalogPriceItem(p entities.CatalogPrice) catalogPriceItem {
	return catalogPriceItem{
		MaterialID: p.MaterialID,
		Price:      floatToString(p.Price),
		Source:     p.Source,
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// fromCatalogPriceItem rejects rows whose price is not a non-negative
// finite number. A bad updated_at is tolerated and left zero.
func fromCatalogPriceItem(it catalogPriceItem) (entities.CatalogPrice, error) {
	price, err := strconv.ParseFloat(it.Price, 64)
	if err != nil {
		return entities.CatalogPrice{}, fmt.Errorf("malformed price %q for %s: %w", it.Price, it.MaterialID, err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return entities.CatalogPrice{}, fmt.Errorf("invalid price %q for %s", it.Price, it.MaterialID)
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CatalogPrice{
		MaterialID: it.MaterialID,
		Price:      price,
		Source:     it.Source,
		UpdatedAt:  updatedAt,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
