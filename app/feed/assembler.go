package feed

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/moodmirror/mirror-match/app/books"
	"github.com/moodmirror/mirror-match/app/metrics"
)

// bookLookupLimit caps concurrent lookups within one request. Feeds carry
// at most a handful of book queries, so the limit only matters when the
// model misbehaves.
const bookLookupLimit = 4

type BookLookup interface {
	Search(ctx context.Context, query string) (*books.Volume, error)
}

var _ BookLookup = (*books.Client)(nil)

type Assembler struct {
	lookup     BookLookup
	normalizer *Normalizer
}

func NewAssembler(lookup BookLookup) *Assembler {
	return &Assembler{
		lookup:     lookup,
		normalizer: NewNormalizer(),
	}
}

// Run turns a draft feed into the published feed. Draft order is
// preserved; dropped items are omitted without gaps. Book queries resolve
// concurrently but land in their original slots, so the output order never
// depends on lookup timing.
//
// An unknown content type fails the whole draft: it means the generation
// schema was not honored, and the caller falls back to the error feed.
func (a *Assembler) Run(ctx context.Context, draft Draft) (Feed, error) {
	resolved := a.resolveBooks(ctx, draft.Items)

	items := make([]Item, 0, len(draft.Items))
	for i, draftItem := range draft.Items {
		if draftItem.ContentType == BookQueryType {
			if resolved[i] != nil {
				items = append(items, *resolved[i])
			}
			continue
		}

		item, err := a.normalizer.Run(draftItem)
		if err != nil {
			if errors.Is(err, ErrUnknownContentType) {
				return Feed{}, err
			}
			slog.Warn("Dropping draft item", "contentType", draftItem.ContentType, "error", err)
			metrics.FeedItemsDropped.WithLabelValues(metrics.ReasonIncompleteItem).Inc()
			continue
		}

		items = append(items, item)
	}

	return Feed{
		DetectedEmotion: draft.DetectedEmotion,
		Items:           items,
	}, nil
}

// resolveBooks runs the enrichment step for every book query slot. A nil
// slot means the item is omitted; lookup failures never propagate — a
// missing book is better than a broken card.
func (a *Assembler) resolveBooks(ctx context.Context, drafts []DraftItem) []*Item {
	resolved := make([]*Item, len(drafts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bookLookupLimit)

	for i, draft := range drafts {
		if draft.ContentType != BookQueryType {
			continue
		}

		g.Go(func() error {
			volume, err := a.lookup.Search(gctx, draft.Details.Query)
			if err != nil {
				slog.Warn("Book lookup failed, omitting item", "query", draft.Details.Query, "error", err)
				metrics.FeedItemsDropped.WithLabelValues(metrics.ReasonBookLookupError).Inc()
				return nil
			}
			if volume == nil {
				slog.Debug("Book lookup returned no match, omitting item", "query", draft.Details.Query)
				metrics.FeedItemsDropped.WithLabelValues(metrics.ReasonBookNotFound).Inc()
				return nil
			}

			resolved[i] = &Item{
				ContentType: TypeBook,
				Details: ItemDetails{
					Title:    volume.Title,
					Author:   volume.Author,
					URL:      volume.URL,
					CoverImg: volume.CoverImg,
				},
			}
			return nil
		})
	}

	// Lookup failures are swallowed above, so Wait cannot fail.
	_ = g.Wait()

	return resolved
}
