package prompt

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultIntentDescription is used for any intent label outside the
// catalog.
const DefaultIntentDescription = "Match the feeling"

func defaultIntents() map[string]string {
	return map[string]string{
		"Reflect": "Find content that matches my feeling",
		"Lift":    "Improve my mood",
		"Calm":    "Help me relax",
		"Boost":   "Get me motivated",
	}
}

// Catalog resolves mood intent labels to prompt descriptions. Built-in
// intents can be extended or overridden from a YAML file; the catalog is
// immutable after Load.
type Catalog struct {
	intents map[string]string
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{intents: defaultIntents()}
}

// LoadCatalog reads additional intents from a YAML file on top of the
// built-in set. An empty path yields the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	catalog := NewCatalog()

	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intents file: %w", err)
	}

	var file IntentsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse intents file: %w", err)
	}

	for _, intent := range file.Intents {
		if err := validateIntent(intent); err != nil {
			return nil, fmt.Errorf("invalid intent in %s: %w", path, err)
		}
		catalog.intents[intent.Label] = intent.Description
	}

	log.Printf("Loaded %d intents from %s", len(file.Intents), path)

	return catalog, nil
}

// Describe returns the description for a mood intent label, falling back
// to the default for unrecognized labels.
func (c *Catalog) Describe(label string) string {
	if description, ok := c.intents[label]; ok {
		return description
	}
	return DefaultIntentDescription
}

func (c *Catalog) Count() int {
	return len(c.intents)
}

func validateIntent(intent Intent) error {
	if intent.Label == "" {
		return fmt.Errorf("intent label is required")
	}
	if intent.Description == "" {
		return fmt.Errorf("intent description is required")
	}
	return nil
}
