package feed

// Published feed types

// ContentType is the closed set of categories a published feed card may
// belong to. The draft-only book query tag is deliberately not a member:
// drafts carry it as a plain string and it cannot survive normalization.
type ContentType string

const (
	TypeQuote       ContentType = "quote"
	TypeSong        ContentType = "song"
	TypeMovie       ContentType = "movie"
	TypeBook        ContentType = "book"
	TypeTVShow      ContentType = "tvShow"
	TypeArticle     ContentType = "article"
	TypePodcast     ContentType = "podcast"
	TypeArt         ContentType = "art"
	TypeAlbum       ContentType = "album"
	TypePlaylist    ContentType = "playlist"
	TypePhotography ContentType = "photography"
	TypeError       ContentType = "error"
)

func (t ContentType) IsValid() bool {
	switch t {
	case TypeQuote, TypeSong, TypeMovie, TypeBook, TypeTVShow, TypeArticle,
		TypePodcast, TypeArt, TypeAlbum, TypePlaylist, TypePhotography, TypeError:
		return true
	}
	return false
}

// ItemDetails is the attribute bag for one feed card. Which fields are
// required depends on the content type; the normalizer enforces that.
type ItemDetails struct {
	Text        string `json:"text,omitempty"`
	Author      string `json:"author,omitempty"`
	Title       string `json:"title,omitempty"`
	Artist      string `json:"artist,omitempty"`
	URL         string `json:"url,omitempty"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CoverImg    string `json:"coverImg,omitempty"`
	SourceName  string `json:"sourceName,omitempty"`
	PodcastName string `json:"podcastName,omitempty"`
}

type Item struct {
	ContentType ContentType `json:"contentType"`
	Details     ItemDetails `json:"details"`
}

// Feed is the response returned to the caller. It lives for exactly one
// request/response cycle and is never mutated after assembly.
type Feed struct {
	DetectedEmotion string `json:"detectedEmotion"`
	Items           []Item `json:"feed"`
}

// Draft types

// BookQueryType tags a draft item that must be resolved through the book
// lookup service instead of trusting model-authored book facts.
const BookQueryType = "book_query"

// DraftDetails is ItemDetails plus the lookup query the model attaches to
// book query items. The query never appears in published output.
type DraftDetails struct {
	Text        string `json:"text"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	URL         string `json:"url"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	CoverImg    string `json:"coverImg"`
	SourceName  string `json:"sourceName"`
	PodcastName string `json:"podcastName"`
	Query       string `json:"query"`
}

// DraftItem is one not-yet-validated card from the generation service.
// ContentType is a plain string because the draft enum space includes the
// book query tag and whatever else the model may emit in violation of its
// schema.
type DraftItem struct {
	ContentType string       `json:"contentType"`
	Details     DraftDetails `json:"details"`
}

type Draft struct {
	DetectedEmotion string      `json:"detectedEmotion"`
	Items           []DraftItem `json:"feed"`
}
