package locale

const (
	// EN is English.
	EN = "en"
	// FR is French.
	FR = "fr"
)

// LangList contains all supported language codes.
var LangList = []string{EN, FR}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN

// Locale is the context key for the request language.
type Locale struct{}
