package entity

// Language represents the user's interface language.
type Language string

const (
	LanguageUzbek   Language = "uz"
	LanguageRussian Language = "ru"
)

// Theme represents the user's interface theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences holds the two persisted user preferences. They are stored
// under a single namespaced key, read once at bootstrap and rewritten on
// every change.
type Preferences struct {
	Language Language `json:"language"`
	Theme    Theme    `json:"theme"`
}

// DefaultPreferences returns the preferences applied before any are saved.
func DefaultPreferences() Preferences {
	return Preferences{
		Language: LanguageUzbek,
		Theme:    ThemeDark,
	}
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
