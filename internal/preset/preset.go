// Package preset reads configuration records from YAML files.
//
// A preset is either a bare record:
//
//	layout: split
//	heading: Build faster
//
// or an envelope naming the component it configures:
//
//	component: hero
//	config:
//	  layout: split
package preset

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phravins/landinggen/internal/markup"
	"gopkg.in/yaml.v2"
)

type Document struct {
	// Component is empty for bare records.
	Component string
	body      []byte
}

type envelope struct {
	Component string        `yaml:"component"`
	Config    yaml.MapSlice `yaml:"config"`
}

// Parse splits a YAML preset into its component name and record body.
func Parse(data []byte) (*Document, error) {
	var env envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if env.Component == "" {
		return &Document{body: data}, nil
	}

	doc := &Document{Component: strings.ToLower(strings.TrimSpace(env.Component))}
	if len(env.Config) == 0 {
		return doc, nil
	}
	body, err := yaml.Marshal(env.Config)
	if err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	doc.body = body
	return doc, nil
}

func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return Parse(data)
}

func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return Parse(data)
}

func (d *Document) Hero() (markup.HeroConfig, error) {
	var cfg markup.HeroConfig
	if err := yaml.Unmarshal(d.body, &cfg); err != nil {
		return markup.HeroConfig{}, fmt.Errorf("decode hero preset: %w", err)
	}
	return cfg, nil
}

func (d *Document) Navbar() (markup.NavbarConfig, error) {
	var cfg markup.NavbarConfig
	if err := yaml.Unmarshal(d.body, &cfg); err != nil {
		return markup.NavbarConfig{}, fmt.Errorf("decode navbar preset: %w", err)
	}
	return cfg, nil
}

// LoadHero reads a hero record from path.
func LoadHero(path string) (markup.HeroConfig, error) {
	doc, err := Open(path)
	if err != nil {
		return markup.HeroConfig{}, err
	}
	return doc.Hero()
}

// LoadNavbar reads a navbar record from path.
func LoadNavbar(path string) (markup.NavbarConfig, error) {
	doc, err := Open(path)
	if err != nil {
		return markup.NavbarConfig{}, err
	}
	return doc.Navbar()
}
