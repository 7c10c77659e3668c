package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/moodmirror/mirror-match/app/books"
)

// fakeLookup resolves queries from a fixed map; unknown queries are a
// miss and queries prefixed with "fail" return an error.
type fakeLookup struct {
	volumes map[string]*books.Volume
	calls   int
}

func (f *fakeLookup) Search(_ context.Context, query string) (*books.Volume, error) {
	f.calls++
	if strings.HasPrefix(query, "fail") {
		return nil, errors.New("lookup transport error")
	}
	return f.volumes[query], nil
}

func quoteDraft(text string) DraftItem {
	return DraftItem{
		ContentType: "quote",
		Details:     DraftDetails{Text: text, Author: "Unknown"},
	}
}

func bookQueryDraft(query string) DraftItem {
	return DraftItem{
		ContentType: BookQueryType,
		Details:     DraftDetails{Query: query},
	}
}

func TestAssembler_BookQueryBecomesBook(t *testing.T) {
	lookup := &fakeLookup{volumes: map[string]*books.Volume{
		"a book about resilience": {
			Title:    "Option B",
			Author:   "Sheryl Sandberg",
			URL:      "https://books.example.com/option-b",
			CoverImg: "https://books.example.com/option-b.jpg",
		},
	}}
	assembler := NewAssembler(lookup)

	draft := Draft{
		DetectedEmotion: "Hopeful",
		Items: []DraftItem{
			bookQueryDraft("a book about resilience"),
		},
	}

	result, err := assembler.Run(context.Background(), draft)
	if err != nil {
		t.Fatalf("Expected assembly to succeed, got: %v", err)
	}

	if result.DetectedEmotion != "Hopeful" {
		t.Errorf("Expected detected emotion to pass through, got '%s'", result.DetectedEmotion)
	}
	if len(result.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(result.Items))
	}

	item := result.Items[0]
	if item.ContentType != TypeBook {
		t.Errorf("Expected content type 'book', got '%s'", item.ContentType)
	}
	if item.Details.Title != "Option B" {
		t.Errorf("Expected title 'Option B', got '%s'", item.Details.Title)
	}
	if item.Details.Author != "Sheryl Sandberg" {
		t.Errorf("Expected author 'Sheryl Sandberg', got '%s'", item.Details.Author)
	}
	if item.Details.URL != "https://books.example.com/option-b" {
		t.Errorf("Expected info link to be mapped, got '%s'", item.Details.URL)
	}
	if item.Details.CoverImg != "https://books.example.com/option-b.jpg" {
		t.Errorf("Expected cover image to be mapped, got '%s'", item.Details.CoverImg)
	}
	if lookup.calls != 1 {
		t.Errorf("Expected exactly one lookup call, got %d", lookup.calls)
	}
}

func TestAssembler_BookMissIsOmitted(t *testing.T) {
	lookup := &fakeLookup{volumes: map[string]*books.Volume{}}
	assembler := NewAssembler(lookup)

	draft := Draft{
		DetectedEmotion: "Calm",
		Items: []DraftItem{
			quoteDraft("Breathe."),
			bookQueryDraft("a book nobody wrote"),
			quoteDraft("Slow down."),
		},
	}

	result, err := assembler.Run(context.Background(), draft)
	if err != nil {
		t.Fatalf("Expected assembly to succeed, got: %v", err)
	}

	// The missed book shrinks the feed by exactly one, without gaps.
	if len(result.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(result.Items))
	}
	for _, item := range result.Items {
		if item.ContentType == TypeBook {
			t.Error("Missed book lookup should not produce a book item")
		}
	}
}

func TestAssembler_BookLookupErrorIsSwallowed(t *testing.T) {
	lookup := &fakeLookup{}
	assembler := NewAssembler(lookup)

	draft := Draft{
		DetectedEmotion: "Tense",
		Items: []DraftItem{
			bookQueryDraft("fail: unreachable"),
			quoteDraft("Still here."),
		},
	}

	result, err := assembler.Run(context.Background(), draft)
	if err != nil {
		t.Fatalf("Lookup errors must not propagate, got: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("Expected 1 surviving item, got %d", len(result.Items))
	}
	if result.Items[0].Details.Text != "Still here." {
		t.Errorf("Expected the quote to survive, got %+v", result.Items[0])
	}
}

func TestAssembler_OrderPreserved(t *testing.T) {
	volumes := make(map[string]*books.Volume)
	var items []DraftItem
	for i := 0; i < 6; i++ {
		query := fmt.Sprintf("book %d", i)
		volumes[query] = &books.Volume{
			Title:  fmt.Sprintf("Title %d", i),
			Author: "Author",
			URL:    "#",
		}
		items = append(items, quoteDraft(fmt.Sprintf("quote %d", i)), bookQueryDraft(query))
	}

	assembler := NewAssembler(&fakeLookup{volumes: volumes})

	result, err := assembler.Run(context.Background(), Draft{DetectedEmotion: "Busy", Items: items})
	if err != nil {
		t.Fatalf("Expected assembly to succeed, got: %v", err)
	}

	if len(result.Items) != len(items) {
		t.Fatalf("Expected %d items, got %d", len(items), len(result.Items))
	}

	// Surviving items must keep draft order even though book lookups run
	// concurrently.
	for i := 0; i < 6; i++ {
		quote := result.Items[2*i]
		book := result.Items[2*i+1]
		if quote.Details.Text != fmt.Sprintf("quote %d", i) {
			t.Errorf("Position %d: expected quote %d, got %+v", 2*i, i, quote.Details)
		}
		if book.ContentType != TypeBook || book.Details.Title != fmt.Sprintf("Title %d", i) {
			t.Errorf("Position %d: expected book 'Title %d', got %+v", 2*i+1, i, book)
		}
	}
}

func TestAssembler_IncompleteItemDropped(t *testing.T) {
	assembler := NewAssembler(&fakeLookup{})

	draft := Draft{
		DetectedEmotion: "Mixed",
		Items: []DraftItem{
			quoteDraft("Complete."),
			{ContentType: "song", Details: DraftDetails{Title: "No artist, no url"}},
		},
	}

	result, err := assembler.Run(context.Background(), draft)
	if err != nil {
		t.Fatalf("Incomplete items must be dropped, not fail the feed: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(result.Items))
	}
}

func TestAssembler_UnknownTypeFailsDraft(t *testing.T) {
	assembler := NewAssembler(&fakeLookup{})

	draft := Draft{
		DetectedEmotion: "Odd",
		Items: []DraftItem{
			quoteDraft("Fine."),
			{ContentType: "hologram", Details: DraftDetails{Title: "Not a real type"}},
		},
	}

	_, err := assembler.Run(context.Background(), draft)
	if !errors.Is(err, ErrUnknownContentType) {
		t.Errorf("Expected the whole draft to fail on an unknown type, got: %v", err)
	}
}

func TestAssembler_OutputNeverGrows(t *testing.T) {
	assembler := NewAssembler(&fakeLookup{})

	draft := Draft{
		DetectedEmotion: "Any",
		Items: []DraftItem{
			quoteDraft("a"),
			bookQueryDraft("missing"),
			bookQueryDraft("fail: down"),
			quoteDraft("b"),
		},
	}

	result, err := assembler.Run(context.Background(), draft)
	if err != nil {
		t.Fatalf("Expected assembly to succeed, got: %v", err)
	}
	if len(result.Items) > len(draft.Items) {
		t.Errorf("Feed may only shrink: draft %d, result %d", len(draft.Items), len(result.Items))
	}
	if len(result.Items) != 2 {
		t.Errorf("Expected 2 surviving items, got %d", len(result.Items))
	}
}

func TestErrorFeed(t *testing.T) {
	result := ErrorFeed(errors.New("connection refused"))

	if result.DetectedEmotion != "Error" {
		t.Errorf("Expected detected emotion 'Error', got '%s'", result.DetectedEmotion)
	}
	if len(result.Items) != 1 {
		t.Fatalf("Expected exactly 1 item, got %d", len(result.Items))
	}

	item := result.Items[0]
	if item.ContentType != TypeError {
		t.Errorf("Expected content type 'error', got '%s'", item.ContentType)
	}
	if item.Details.Title != "Backend Error" {
		t.Errorf("Expected title 'Backend Error', got '%s'", item.Details.Title)
	}
	if item.Details.Description == "" {
		t.Error("Expected a non-empty description")
	}
	if !strings.Contains(item.Details.Description, "connection refused") {
		t.Errorf("Expected description to mention the underlying failure, got '%s'", item.Details.Description)
	}
}
