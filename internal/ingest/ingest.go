// Package ingest wires fetch, parse and persistence into the per-player
// ingestion pipeline.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/tyler180/pfr-player-ingest/internal/model"
	"github.com/tyler180/pfr-player-ingest/internal/pfr"
)

// PlayerStore is the persistence capability: lookup by the source
// site's player id and whole-aggregate upsert. Load returns nil, nil
// for a player not seen before.
type PlayerStore interface {
	LoadPlayerByExternalID(ctx context.Context, externalID string) (*model.Player, error)
	Upsert(ctx context.Context, player *model.Player) error
}

// Fetcher retrieves a navigable document for a profile URL.
type Fetcher func(ctx context.Context, url string) (*goquery.Document, error)

type Ingestor struct {
	fetch  Fetcher
	parser *pfr.Parser
	store  PlayerStore
}

func New(fetch Fetcher, parser *pfr.Parser, store PlayerStore) *Ingestor {
	return &Ingestor{fetch: fetch, parser: parser, store: store}
}

// IngestPlayer runs the whole pipeline for one profile URL. It never
// fails outward: any error anywhere is logged with the URL and the
// player is skipped, so one bad input cannot abort a batch. Safe to
// invoke repeatedly for the same URL.
func (in *Ingestor) IngestPlayer(ctx context.Context, url string) {
	if err := in.ingest(ctx, url); err != nil {
		slog.Error("ingest failed, skipping player", "url", url, "err", err)
	}
}

// IngestAll ingests each URL in turn, isolating per-player failure.
func (in *Ingestor) IngestAll(ctx context.Context, urls []string) {
	for _, url := range urls {
		in.IngestPlayer(ctx, url)
	}
}

func (in *Ingestor) ingest(ctx context.Context, url string) error {
	externalID := pfr.ExternalIDFromURL(url)
	if externalID == "" {
		return fmt.Errorf("no player id in url")
	}

	doc, err := in.fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	parsed, diag := in.parser.ParseProfile(doc, externalID)
	diag.Log(url)

	existing, err := in.store.LoadPlayerByExternalID(ctx, externalID)
	if err != nil {
		return fmt.Errorf("load %s: %w", externalID, err)
	}
	if existing == nil {
		existing = &model.Player{ID: uuid.NewString(), ExternalID: externalID}
	}

	merged := model.MergeAggregate(existing, parsed)
	if err := in.store.Upsert(ctx, merged); err != nil {
		return fmt.Errorf("upsert %s: %w", externalID, err)
	}

	slog.Info("ingested player",
		"url", url,
		"player", externalID,
		"positions", len(merged.Positions),
		"picks", len(merged.DraftPicks),
		"seasons", len(merged.Seasons),
	)
	return nil
}
