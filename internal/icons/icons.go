package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Dot       string // a card in the position indicator
	DotActive string // the current card
	Media     string // prefix of the player name in a card byline
}

var (
	nerdIcons = Icons{
		Dot:       "\uf10c", // nf-fa-circle_o
		DotActive: "\uf111", // nf-fa-circle
		Media:     "󰕧 ",     // nf-md-video
	}

	unicodeIcons = Icons{
		Dot:       "○",
		DotActive: "●",
		Media:     "via ",
	}

	noneIcons = Icons{
		Dot:       ".",
		DotActive: "*",
		Media:     "via ",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Dot returns the indicator glyph for card i of a carousel showing index.
func Dot(i, index int) string {
	if i == index {
		return current.DotActive
	}
	return current.Dot
}

// FormatMedia formats the name of the player showing a card.
func FormatMedia(player string) string {
	if player == "" {
		return ""
	}
	return current.Media + player
}
