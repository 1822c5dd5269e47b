// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

// dynamoUnitStorage reads units with a full table Scan. Every page is read,
// so the result is complete regardless of the 1 MB page limit.
type dynamoUnitStorage struct {
	client    dynamodb.ScanAPIClient
	tableName string
	pageSize  int32
	logger    *logger.Logger
}

// NewDynamoUnitStorage constructs a [UnitStorage] over the given Scan client.
// A non-positive pageSize leaves the page size to DynamoDB.
func NewDynamoUnitStorage(client dynamodb.ScanAPIClient, tableName string, pageSize int32, log *logger.Logger) UnitStorage {
	log.Debug().Str("table", tableName).Msg("creating dynamodb unit storage")
	return &dynamoUnitStorage{
		client:    client,
		tableName: tableName,
		pageSize:  pageSize,
		logger:    log,
	}
}

// NewDynamoDBClient builds a DynamoDB client from the shared AWS config,
// applying the region and endpoint overrides of cfg.
func NewDynamoDBClient(awsCfg aws.Config, cfg config.DynamoDB) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Region != "" {
			o.Region = cfg.Region
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
}

func (s *dynamoUnitStorage) GetAll(ctx context.Context) ([]models.Unit, error) {
	log := logger.FromContext(ctx)

	input := &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	}
	if s.pageSize > 0 {
		input.Limit = aws.Int32(s.pageSize)
	}

	units := make([]models.Unit, 0)
	pages := 0
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.Err(err).Str("func", "*dynamoUnitStorage.GetAll").Str("table", s.tableName).Msg("error scanning table")
			return nil, fmt.Errorf("%w %s: %w", ErrScanningTable, s.tableName, err)
		}
		pages++

		var pageUnits []models.Unit
		if err = attributevalue.UnmarshalListOfMaps(page.Items, &pageUnits); err != nil {
			log.Err(err).Str("func", "*dynamoUnitStorage.GetAll").Msg("error decoding scanned items")
			return nil, fmt.Errorf("%w: %w", ErrDecodingUnits, err)
		}
		units = append(units, pageUnits...)
	}

	log.Debug().Str("func", "*dynamoUnitStorage.GetAll").
		Str("table", s.tableName).
		Int("pages", pages).
		Int("units", len(units)).
		Msg("units scanned")

	return units, nil
}
