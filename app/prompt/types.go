package prompt

// MoodRequest is the caller input the system instruction is rendered from.
type MoodRequest struct {
	TextInput  string `json:"text_input" binding:"required"`
	MoodIntent string `json:"mood_intent"`
}

// Intent maps a short mood intent label to the human-readable description
// embedded in the system instruction.
type Intent struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// IntentsFile is the shape of the optional intents YAML file.
type IntentsFile struct {
	Intents []Intent `yaml:"intents"`
}
