package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/tyler180/pfr-player-ingest/internal/model"
	"github.com/tyler180/pfr-player-ingest/internal/teams"
)

// LoadTeamDirectory scans the franchise reference table into the
// in-memory directory. Runs once at startup; the table is small
// (one item per franchise-season).
func LoadTeamDirectory(ctx context.Context, client dynamodb.ScanAPIClient, table string) (*teams.Directory, error) {
	var rows []model.Team
	paginator := dynamodb.NewScanPaginator(client, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan teams table %s: %w", table, err)
		}
		var batch []model.Team
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal teams: %w", err)
		}
		rows = append(rows, batch...)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("teams table %s is empty", table)
	}
	return teams.NewDirectory(rows), nil
}
