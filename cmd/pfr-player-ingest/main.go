package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/tyler180/pfr-player-ingest/internal/ingest"
	"github.com/tyler180/pfr-player-ingest/internal/pfr"
	"github.com/tyler180/pfr-player-ingest/internal/store"
)

const baseURL = "https://www.pro-football-reference.com"

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("missing env", "key", k)
		os.Exit(1)
	}
	return v
}

// profileURLs accepts PLAYER_URLS as full URLs or bare player ids
// ("BradTo00"), comma-separated.
func profileURLs(raw string) []string {
	var urls []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, "http://") || strings.HasPrefix(tok, "https://") {
			urls = append(urls, tok)
			continue
		}
		urls = append(urls, fmt.Sprintf("%s/players/%s/%s.htm", baseURL, tok[:1], tok))
	}
	return urls
}

func handler(ctx context.Context) error {
	playerTable := mustenv("PLAYER_TABLE_NAME")
	teamsTable := mustenv("TEAMS_TABLE_NAME")
	urls := profileURLs(getenv("PLAYER_URLS", ""))
	if len(urls) == 0 {
		slog.Info("no player urls configured, nothing to do")
		return nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	ddbc := ddb.NewFromConfig(cfg)

	directory, err := store.LoadTeamDirectory(ctx, ddbc, teamsTable)
	if err != nil {
		return err
	}

	in := ingest.New(
		pfr.FetchDocument,
		pfr.NewParser(directory),
		store.NewPlayerStore(ddbc, playerTable),
	)
	in.IngestAll(ctx, urls)

	slog.Info("ingestion run complete", "players", len(urls))
	return nil
}

func main() {
	lambda.Start(handler)
}
