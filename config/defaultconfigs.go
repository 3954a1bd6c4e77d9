package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawBorders: true,
		Colors: ConfigColors{
			BoardColor:    22,
			BlackColor:    232,
			WhiteColor:    255,
			HintColor:     46,
			CursorColorBG: 4,
			LineColor:     34,
		},
		Symbols: ConfigSymbols{
			BlackDisc:   '●',
			WhiteDisc:   '○',
			EmptySquare: '·',
			Hint:        '*',
		},
	}

	DefaultConfig = Config{
		Theme:     DefaultTheme,
		ShowHints: true,
		Language:  "en",
		LogLevel:  "info",
	}
}
