package constants

// Palette is the fixed set of tracker color codes. The code is what gets
// persisted; presentation layers map it to an actual color.
var Palette = []string{
	"red", "orange", "blue", "violet", "green", "pink",
	"peach", "sky", "mint", "indigo", "coral", "lime",
	"rose", "periwinkle", "emerald", "purple", "magenta", "olive",
}

// Emojis is the fixed set of glyphs a tracker may carry.
var Emojis = []string{
	"🙂", "😻", "🌺", "🐶", "❤️", "😱",
	"😇", "😡", "🥶", "🤔", "🙌", "🍔",
	"🥦", "🏓", "🥇", "🎸", "🏝", "😪",
}

// ValidColor reports whether code is part of the palette.
func ValidColor(code string) bool {
	for _, c := range Palette {
		if c == code {
			return true
		}
	}
	return false
}

// ValidEmoji reports whether glyph is part of the fixed emoji set.
func ValidEmoji(glyph string) bool {
	for _, e := range Emojis {
		if e == glyph {
			return true
		}
	}
	return false
}
