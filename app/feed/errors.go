package feed

import "fmt"

// ErrorFeed builds the single-item feed reported to the caller when the
// generation call (or draft validation) fails. The HTTP layer still
// answers 200 with this body so the client contract stays stable.
func ErrorFeed(err error) Feed {
	return Feed{
		DetectedEmotion: "Error",
		Items: []Item{
			{
				ContentType: TypeError,
				Details: ItemDetails{
					Title:       "Backend Error",
					Description: fmt.Sprintf("Could not generate the recommendation feed: %v", err),
				},
			},
		},
	}
}
