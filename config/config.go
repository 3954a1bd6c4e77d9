// Package config loads and saves user settings from the XDG config directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/havfo/reversi/i18n"
)

var (
	cfgFile = "reversi/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor    int `json:"board"`
	BlackColor    int `json:"black"`
	WhiteColor    int `json:"white"`
	HintColor     int `json:"hint"`
	CursorColorBG int `json:"cursor_bg"`
	LineColor     int `json:"line"`
}

type ConfigSymbols struct {
	BlackDisc   rune `json:"black"`
	WhiteDisc   rune `json:"white"`
	EmptySquare rune `json:"empty"`
	Hint        rune `json:"hint"`
}

type Theme struct {
	DrawBorders bool          `json:"draw_borders"`
	Colors      ConfigColors  `json:"colors"`
	Symbols     ConfigSymbols `json:"symbols"`
}

type Config struct {
	Theme     Theme  `json:"theme"`
	ShowHints bool   `json:"show_hints"`
	Language  string `json:"language"`
	LogLevel  string `json:"log_level"`
}

// InitConfig returns the defaults overlaid with the user's config file, if one exists.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ApplyEnv overrides settings from REVERSI_* variables. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("REVERSI_LANG"); v != "" {
		c.Language = strings.ToLower(v)
	}
	if v := getenv("REVERSI_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := getenv("REVERSI_HINTS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("REVERSI_HINTS=%q is not a boolean", v)}
		}
		c.ShowHints = b
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.BlackDisc, s.WhiteDisc, s.EmptySquare, s.Hint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 0-31 and 127-159 are not allowed"}
		}
	}
	for _, col := range []int{c.Theme.Colors.BoardColor, c.Theme.Colors.BlackColor, c.Theme.Colors.WhiteColor,
		c.Theme.Colors.HintColor, c.Theme.Colors.CursorColorBG, c.Theme.Colors.LineColor} {
		if col < 0 || col > 255 {
			return &InvalidConfig{fmt.Sprintf("palette colour %d out of range 0-255", col)}
		}
	}
	if !i18n.Supported(c.Language) {
		return &InvalidConfig{fmt.Sprintf("unsupported language %q", c.Language)}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
