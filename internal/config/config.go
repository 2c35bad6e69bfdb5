package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/phravins/landinggen/internal/markup"
	"github.com/spf13/viper"
)

const Version = "v1.0.0"

// HeroDefaults is the initial state of the hero configurator.
type HeroDefaults struct {
	Layout         string `mapstructure:"layout" yaml:"layout"`
	Background     string `mapstructure:"background" yaml:"background"`
	Font           string `mapstructure:"font" yaml:"font"`
	GradientFrom   string `mapstructure:"gradient_from" yaml:"gradient_from"`
	GradientTo     string `mapstructure:"gradient_to" yaml:"gradient_to"`
	SolidColor     string `mapstructure:"solid_color" yaml:"solid_color"`
	PrimaryColor   string `mapstructure:"primary_color" yaml:"primary_color"`
	SecondaryColor string `mapstructure:"secondary_color" yaml:"secondary_color"`
}

// NavbarDefaults is the initial state of the navbar configurator.
type NavbarDefaults struct {
	Auth            string `mapstructure:"auth" yaml:"auth"`
	Background      string `mapstructure:"background" yaml:"background"`
	BackgroundColor string `mapstructure:"background_color" yaml:"background_color"`
	GradientStart   string `mapstructure:"gradient_start" yaml:"gradient_start"`
	GradientEnd     string `mapstructure:"gradient_end" yaml:"gradient_end"`
	Direction       string `mapstructure:"direction" yaml:"direction"`
}

type Config struct {
	HighlightStyle string         `mapstructure:"highlight_style" yaml:"highlight_style"`
	AutoCopy       bool           `mapstructure:"auto_copy" yaml:"auto_copy"`
	ServerAddr     string         `mapstructure:"server_addr" yaml:"server_addr"`
	LogLevel       string         `mapstructure:"log_level" yaml:"log_level"`
	Hero           HeroDefaults   `mapstructure:"hero" yaml:"hero"`
	Navbar         NavbarDefaults `mapstructure:"navbar" yaml:"navbar"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("highlight_style", "dracula")
	v.SetDefault("auto_copy", false)
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("log_level", "info")

	v.SetDefault("hero.layout", string(markup.LayoutCentered))
	v.SetDefault("hero.background", string(markup.BackgroundImage))
	v.SetDefault("hero.font", string(markup.FontSans))
	v.SetDefault("hero.gradient_from", "#3b82f6")
	v.SetDefault("hero.gradient_to", "#06b6d4")
	v.SetDefault("hero.solid_color", "#1e293b")
	v.SetDefault("hero.primary_color", "#3b82f6")
	v.SetDefault("hero.secondary_color", "#64748b")

	v.SetDefault("navbar.auth", string(markup.AuthLogin))
	v.SetDefault("navbar.background", string(markup.NavBackgroundStatic))
	v.SetDefault("navbar.background_color", "#ffffff")
	v.SetDefault("navbar.gradient_start", "#ffffff")
	v.SetDefault("navbar.gradient_end", "#000000")
	v.SetDefault("navbar.direction", string(markup.DirectionRight))
}

// Keys lists every setting name in dotted form, sorted.
func Keys() []string {
	v := viper.New()
	setDefaults(v)
	keys := v.AllKeys()
	sort.Strings(keys)
	return keys
}

// LoadConfig reads ~/.landinggen.yaml. A missing file is not an error.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return Load(home)
}

// Load reads .landinggen.yaml from dir, applying LANDINGGEN_* environment
// overrides (LANDINGGEN_HERO_FONT sets hero.font).
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".landinggen")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("landinggen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Default returns the built-in defaults without touching the filesystem.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// Write saves key=value into ~/.landinggen.yaml, keeping what is already there.
func Write(key string, value interface{}) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return WriteTo(home, key, value)
}

func WriteTo(dir, key string, value interface{}) error {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".landinggen")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	v.Set(key, value)
	return v.WriteConfigAs(filepath.Join(dir, ".landinggen.yaml"))
}

// InitialHero returns the record the hero configurator starts from.
func (c *Config) InitialHero() markup.HeroConfig {
	d := c.Hero
	bg := markup.Background{
		Kind:  markup.BackgroundKind(d.Background),
		From:  markup.Color(d.GradientFrom),
		To:    markup.Color(d.GradientTo),
		Color: markup.Color(d.SolidColor),
	}
	return markup.HeroConfig{
		Layout:     markup.Layout(d.Layout),
		Background: bg,
		Font:       markup.Font(d.Font),
		Buttons: markup.Buttons{
			Primary:   &markup.ButtonSpec{Color: markup.Color(d.PrimaryColor)},
			Secondary: &markup.ButtonSpec{Color: markup.Color(d.SecondaryColor)},
		},
	}
}

// InitialNavbar returns the record the navbar configurator starts from.
func (c *Config) InitialNavbar() markup.NavbarConfig {
	d := c.Navbar
	return markup.NavbarConfig{
		Auth: markup.AuthOption(d.Auth),
		Background: markup.NavBackground{
			Kind:      markup.NavBackgroundKind(d.Background),
			Color:     markup.Color(d.BackgroundColor),
			Start:     markup.Color(d.GradientStart),
			End:       markup.Color(d.GradientEnd),
			Direction: markup.Direction(d.Direction),
		},
	}
}
