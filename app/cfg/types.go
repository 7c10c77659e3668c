package cfg

type Cfg struct {
	// Gemini configuration
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// Google Books configuration
	BooksBaseURL string

	// Application configuration
	Port           string
	IntentsFile    string
	AllowedOrigins []string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
