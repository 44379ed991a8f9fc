package syncer

import (
	"context"
	"fmt"
	"sync/atomic"

	"srd-mirror/core/remote"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ArchiveFunc stores a raw detail document before mapping, e.g. as an audit
// copy in object storage. Archive failures fail the item like any other.
type ArchiveFunc func(ctx context.Context, resource, index string, doc Document) error

// Engine drives resource syncs against one database and one upstream client.
// It holds no per-resource state; concurrent syncs of different resources are
// independent because their tables are disjoint.
type Engine struct {
	db          *gorm.DB
	client      remote.Client
	logger      *zap.Logger
	concurrency int
	archive     ArchiveFunc
}

// NewEngine creates a sync engine.
func NewEngine(db *gorm.DB, client remote.Client, logger *zap.Logger, cfg Config) *Engine {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Engine{
		db:          db,
		client:      client,
		logger:      logger,
		concurrency: concurrency,
	}
}

// WithArchive enables raw-document archival for every fetched detail document.
func (e *Engine) WithArchive(fn ArchiveFunc) *Engine {
	e.archive = fn
	return e
}

// Sync mirrors one resource: list the upstream index, fetch each item's
// detail, map it, and write it. Returns the report alongside the first error;
// on the enriched path the report still counts the items committed before the
// failure.
func (e *Engine) Sync(ctx context.Context, d Descriptor) (*Report, error) {
	refs, err := e.client.List(ctx, d.Resource)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", d.Resource, err)
	}

	report := &Report{Resource: d.Resource, Attempted: len(refs)}
	e.logger.Info("Sync started",
		zap.String("resource", d.Resource),
		zap.Int("items", len(refs)),
		zap.Bool("enriched", d.Enriched()),
	)

	if d.Enriched() {
		err = e.syncSequential(ctx, d, refs, report)
	} else {
		err = e.syncConcurrent(ctx, d, refs, report)
	}
	if err != nil {
		e.logger.Error("Sync failed",
			zap.String("resource", d.Resource),
			zap.Int("synced", report.Synced),
			zap.Error(err),
		)
		return report, err
	}

	e.logger.Info("Sync finished",
		zap.String("resource", d.Resource),
		zap.Int("synced", report.Synced),
	)
	return report, nil
}

// syncConcurrent is the generic path: items are independent single-row
// upserts, fanned out under a bounded worker group. The first error cancels
// the group; in-flight items finish harmlessly on their own rows.
func (e *Engine) syncConcurrent(ctx context.Context, d Descriptor, refs []remote.Ref, report *Report) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	var synced atomic.Int64
	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			doc, err := e.fetchDocument(ctx, d, ref)
			if err != nil {
				return err
			}
			rec, err := d.Map(doc)
			if err != nil {
				return fmt.Errorf("mapping %s %q: %w", d.Resource, ref.Index, err)
			}
			if err := upsert(e.db.WithContext(ctx), d.Table, d.KeyColumn, rec); err != nil {
				return fmt.Errorf("%s %q: %w", d.Resource, ref.Index, err)
			}
			synced.Add(1)
			return nil
		})
	}

	err := g.Wait()
	report.Synced = int(synced.Load())
	return err
}

// syncSequential is the enriched path: items run strictly in index order, and
// each item's parent upsert plus full child-table replacement commits or
// rolls back as one transaction. The first failure aborts the remaining
// items; earlier commits stand.
func (e *Engine) syncSequential(ctx context.Context, d Descriptor, refs []remote.Ref, report *Report) error {
	for _, ref := range refs {
		doc, err := e.fetchDocument(ctx, d, ref)
		if err != nil {
			return err
		}
		if d.Expand != nil {
			doc, err = d.Expand(ctx, e.client, doc)
			if err != nil {
				return fmt.Errorf("expanding %s %q: %w", d.Resource, ref.Index, err)
			}
		}

		rec, err := d.Map(doc)
		if err != nil {
			return fmt.Errorf("mapping %s %q: %w", d.Resource, ref.Index, err)
		}
		parentKey := rec[d.KeyColumn]

		err = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := upsert(tx, d.Table, d.KeyColumn, rec); err != nil {
				return err
			}
			for _, ct := range d.Children {
				records, err := ct.Extract(doc)
				if err != nil {
					return fmt.Errorf("extracting %s: %w", ct.Table, err)
				}
				if err := replaceChildren(tx, ct, parentKey, records); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("%s %q: %w", d.Resource, ref.Index, err)
		}

		report.Synced++
	}
	return nil
}

// fetchDocument pulls one detail document and runs the archive hook.
func (e *Engine) fetchDocument(ctx context.Context, d Descriptor, ref remote.Ref) (Document, error) {
	raw, err := e.client.Get(ctx, ref.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s %q: %w", d.Resource, ref.Index, err)
	}
	doc := Document(raw)

	if e.archive != nil {
		if err := e.archive(ctx, d.Resource, ref.Index, doc); err != nil {
			return nil, fmt.Errorf("archiving %s %q: %w", d.Resource, ref.Index, err)
		}
	}
	return doc, nil
}
