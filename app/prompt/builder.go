package prompt

import (
	"fmt"
	"strings"
)

// TriggerMessage is the fixed user message sent to the generation service.
// All real context travels in the system instruction and response schema.
const TriggerMessage = "Analyze the user input and generate the feed."

type Builder struct {
	catalog *Catalog
}

func NewBuilder(catalog *Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Run renders the MirrorMatch system instruction for one request. Books
// are requested as book_query placeholders so real book facts come from
// the lookup service instead of the model.
func (b *Builder) Run(request MoodRequest) string {
	intentDescription := b.catalog.Describe(request.MoodIntent)

	var sb strings.Builder

	sb.WriteString(`You are MoodMirror's "MirrorMatch Engine". Your task is to generate a personalized content feed.
Analyze the user's emotion from their text input. Then, consider their chosen "intent".
Based on the emotion and intent, return a JSON object containing a 'feed' key.
This 'feed' key must be an array of 5-7 content items.
Mix the content types: include a variety of 'quote', 'song', 'album', 'playlist', 'movie', 'book_query', 'tvShow', 'article', 'podcast', 'art', and 'photography'.
Ensure at least one media item (not just quotes) is included if possible.
`)

	fmt.Fprintf(&sb, "The user's text is: %q\n", request.TextInput)
	fmt.Fprintf(&sb, "The user's intent is: %q (%s)\n", request.MoodIntent, intentDescription)

	sb.WriteString(`
Respond *only* with the JSON object. Do not include markdown.
Each item in the 'feed' array must have a 'contentType' field and a 'details' field.
- For "quote": details must have "text" and "author". If no author is known, use "Unknown".
- For "song": details must have "title", "artist", "url" (a plausible spotify.com link), and "imageUrl" (placeholder).
- For "album": details must have "title", "artist", "url" (spotify.com link), and "imageUrl" (placeholder).
- For "playlist": details must have "title", "sourceName" (e.g., "Spotify", "Apple Music"), and "url".
- For "movie": details must have "title", "year" (number), "description" (1-2 sentences), "url" (imdb.com link), and "imageUrl" (placeholder).
- For "book_query": details must have only "query", a short search phrase describing the book to recommend (e.g., "a book about resilience"). Do not invent title, author, or links.
- For "tvShow": details must have "title", "year" (number), "description" (1-2 sentences), "url" (imdb.com link), and "imageUrl" (placeholder).
- For "article": details must have "title", "sourceName" (e.g., "Medium", "The New York Times"), and "url".
- For "podcast": details must have "title" (episode title), "podcastName" (show name), and "url".
- For "art": details must have "title", "artist", "url" (viewing link), and "imageUrl" (placeholder).
- For "photography": details must have "title", "artist" (photographer), "url", and "imageUrl".
Also include a top-level 'detectedEmotion' field with the emotion you found.`)

	return sb.String()
}
