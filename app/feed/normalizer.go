package feed

import (
	"errors"
	"fmt"
)

// ErrUnknownContentType is returned when a draft item declares a content
// type outside the published enum. The assembler treats it as a schema
// violation of the whole draft, not as a droppable item.
var ErrUnknownContentType = errors.New("unknown content type")

// ErrIncompleteItem is returned when a draft item is missing a field its
// content type requires. Such items are droppable.
var ErrIncompleteItem = errors.New("incomplete item details")

type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Run converts one draft item into a published feed item. The declared
// content type is copied through verbatim; recognized detail keys are
// mapped structurally and everything else (including the book lookup
// query) is discarded.
func (n *Normalizer) Run(draft DraftItem) (Item, error) {
	contentType := ContentType(draft.ContentType)
	if !contentType.IsValid() {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownContentType, draft.ContentType)
	}

	item := Item{
		ContentType: contentType,
		Details: ItemDetails{
			Text:        draft.Details.Text,
			Author:      draft.Details.Author,
			Title:       draft.Details.Title,
			Artist:      draft.Details.Artist,
			URL:         draft.Details.URL,
			Year:        draft.Details.Year,
			Description: draft.Details.Description,
			ImageURL:    draft.Details.ImageURL,
			CoverImg:    draft.Details.CoverImg,
			SourceName:  draft.Details.SourceName,
			PodcastName: draft.Details.PodcastName,
		},
	}

	if missing := n.missingField(item); missing != "" {
		return Item{}, fmt.Errorf("%w: %s item missing %q", ErrIncompleteItem, contentType, missing)
	}

	return item, nil
}

// missingField checks the per-type required fields from the generation
// contract and returns the name of the first missing one.
func (n *Normalizer) missingField(item Item) string {
	d := item.Details

	switch item.ContentType {
	case TypeQuote:
		return firstEmpty(field{"text", d.Text}, field{"author", d.Author})
	case TypeSong, TypeAlbum:
		return firstEmpty(field{"title", d.Title}, field{"artist", d.Artist}, field{"url", d.URL})
	case TypePlaylist, TypeArticle:
		return firstEmpty(field{"title", d.Title}, field{"sourceName", d.SourceName}, field{"url", d.URL})
	case TypeMovie, TypeTVShow:
		if d.Year == 0 {
			return "year"
		}
		return firstEmpty(field{"title", d.Title}, field{"description", d.Description}, field{"url", d.URL})
	case TypePodcast:
		return firstEmpty(field{"title", d.Title}, field{"podcastName", d.PodcastName}, field{"url", d.URL})
	case TypeArt, TypePhotography:
		return firstEmpty(field{"title", d.Title}, field{"artist", d.Artist}, field{"url", d.URL})
	case TypeBook:
		return firstEmpty(field{"title", d.Title}, field{"author", d.Author}, field{"url", d.URL})
	case TypeError:
		return firstEmpty(field{"title", d.Title}, field{"description", d.Description})
	}

	return ""
}

type field struct {
	name  string
	value string
}

func firstEmpty(fields ...field) string {
	for _, f := range fields {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}
