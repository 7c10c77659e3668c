package prompt

// draftContentTypes is the enum the generation service must draw from.
// Books appear as book_query placeholders; the published enum is enforced
// later by the feed normalizer.
var draftContentTypes = []string{
	"quote", "song", "movie", "book_query", "tvShow", "article",
	"podcast", "art", "album", "playlist", "photography",
}

// ResponseSchema is the structured output schema attached to every
// generation request, in the type vocabulary the Gemini API expects.
func ResponseSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"detectedEmotion": map[string]any{"type": "STRING"},
			"feed": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"contentType": map[string]any{
							"type": "STRING",
							"enum": draftContentTypes,
						},
						"details": map[string]any{
							"type": "OBJECT",
							"properties": map[string]any{
								"text":        map[string]any{"type": "STRING"},
								"author":      map[string]any{"type": "STRING"},
								"title":       map[string]any{"type": "STRING"},
								"artist":      map[string]any{"type": "STRING"},
								"url":         map[string]any{"type": "STRING"},
								"year":        map[string]any{"type": "NUMBER"},
								"description": map[string]any{"type": "STRING"},
								"imageUrl":    map[string]any{"type": "STRING"},
								"coverImg":    map[string]any{"type": "STRING"},
								"sourceName":  map[string]any{"type": "STRING"},
								"podcastName": map[string]any{"type": "STRING"},
								"query":       map[string]any{"type": "STRING"},
							},
						},
					},
					"required": []string{"contentType", "details"},
				},
			},
		},
		"required": []string{"detectedEmotion", "feed"},
	}
}
