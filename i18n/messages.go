// Package i18n holds the translated strings shown to players.
package i18n

// Messages holds the user-facing strings for one language.
type Messages struct {
	Prompt      string
	BadInput    string
	Illegal     string
	Turn        string // %s = player name
	Passed      string // %s = skipped player
	Score       string // %s black name, %d black, %s white name, %d white
	Winner      string // %s = winner
	Draw        string
	GameOver    string
	PlayerBlack string
	PlayerWhite string

	// terminal UI
	Title     string
	ShowHints string
	StartGame string
	NewGame   string
	Quit      string
	Controls  string
}

var catalogs = map[string]Messages{
	"en": {
		Prompt:      "Enter a square (e.g. D3): ",
		BadInput:    "Please enter a column A-H and a row 1-8.",
		Illegal:     "You can't place a disc there.",
		Turn:        "%s to move.",
		Passed:      "%s has no legal move and passes.",
		Score:       "%s: %d  %s: %d",
		Winner:      "%s wins!",
		Draw:        "It's a draw.",
		GameOver:    "Game over.",
		PlayerBlack: "Black",
		PlayerWhite: "White",
		Title:       "Reversi",
		ShowHints:   "Show valid moves",
		StartGame:   "Start Game",
		NewGame:     "New Game",
		Quit:        "Quit",
		Controls:    "arrows/hjkl move   enter play   n new game   q quit",
	},
	"ja": {
		Prompt:      "石を置く位置を入力してください: ",
		BadInput:    "有効な位置を入力してね",
		Illegal:     "そこには置けないよ",
		Turn:        "%sの番です",
		Passed:      "%sは石を置ける場所が無いのでパス！",
		Score:       "%s: %d  %s: %d",
		Winner:      "%sの勝ち！",
		Draw:        "引き分け",
		GameOver:    "ゲーム終了",
		PlayerBlack: "黒",
		PlayerWhite: "白",
		Title:       "リバーシ",
		ShowHints:   "置ける場所を表示",
		StartGame:   "ゲーム開始",
		NewGame:     "新しいゲーム",
		Quit:        "終了",
		Controls:    "矢印/hjkl 移動   Enter 置く   n 新しいゲーム   q 終了",
	},
}

// For returns the catalog for lang, falling back to English.
func For(lang string) Messages {
	if m, ok := catalogs[lang]; ok {
		return m
	}
	return catalogs["en"]
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}
