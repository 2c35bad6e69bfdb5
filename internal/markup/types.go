package markup

// Color is a CSS hex color such as "#3b82f6". It is interpolated verbatim.
type Color string

// Layout selects the structural template of a hero block.
type Layout string

const (
	LayoutCentered Layout = "centered"
	LayoutSplit    Layout = "split"
	LayoutMinimal  Layout = "minimal"
)

// Layouts lists the hero layouts in the order they are offered to users.
var Layouts = []Layout{LayoutCentered, LayoutSplit, LayoutMinimal}

// Font is one of the three Tailwind font families.
type Font string

const (
	FontSans  Font = "sans"
	FontSerif Font = "serif"
	FontMono  Font = "mono"
)

var Fonts = []Font{FontSans, FontSerif, FontMono}

// Class returns the Tailwind class for f. Unknown fonts map to font-sans.
func (f Font) Class() string {
	switch f {
	case FontSerif, FontMono:
		return "font-" + string(f)
	default:
		return "font-sans"
	}
}

// Direction is the target side of a linear gradient.
type Direction string

const (
	DirectionRight  Direction = "right"
	DirectionLeft   Direction = "left"
	DirectionBottom Direction = "bottom"
	DirectionTop    Direction = "top"
)

var Directions = []Direction{DirectionRight, DirectionLeft, DirectionBottom, DirectionTop}

// CSS returns the gradient direction keyword, "to right" when d is empty.
func (d Direction) CSS() string {
	if d == "" {
		d = DirectionRight
	}
	return "to " + string(d)
}

// BackgroundKind tags a hero Background.
type BackgroundKind string

const (
	BackgroundImage    BackgroundKind = "image"
	BackgroundGradient BackgroundKind = "gradient"
	BackgroundSolid    BackgroundKind = "solid"
)

var BackgroundKinds = []BackgroundKind{BackgroundImage, BackgroundGradient, BackgroundSolid}

// Background describes how a hero block is painted. Kind decides which of
// the remaining fields are read: URL for image, From/To/Direction for
// gradient, Color for solid.
type Background struct {
	Kind      BackgroundKind `yaml:"kind" json:"kind"`
	URL       string         `yaml:"url,omitempty" json:"url,omitempty"`
	From      Color          `yaml:"from,omitempty" json:"from,omitempty"`
	To        Color          `yaml:"to,omitempty" json:"to,omitempty"`
	Direction Direction      `yaml:"direction,omitempty" json:"direction,omitempty"`
	Color     Color          `yaml:"color,omitempty" json:"color,omitempty"`
}

func ImageBackground(url string) Background {
	return Background{Kind: BackgroundImage, URL: url}
}

func GradientBackground(from, to Color) Background {
	return Background{Kind: BackgroundGradient, From: from, To: to}
}

func SolidBackground(c Color) Background {
	return Background{Kind: BackgroundSolid, Color: c}
}

type ButtonSpec struct {
	Text  string `yaml:"text" json:"text"`
	Color Color  `yaml:"color" json:"color"`
}

type Buttons struct {
	Enabled   bool        `yaml:"enabled" json:"enabled"`
	Primary   *ButtonSpec `yaml:"primary,omitempty" json:"primary,omitempty"`
	Secondary *ButtonSpec `yaml:"secondary,omitempty" json:"secondary,omitempty"`
}

// HeroConfig is the configuration record of a hero block.
type HeroConfig struct {
	Heading     string     `yaml:"heading" json:"heading"`
	Description string     `yaml:"description" json:"description"`
	Layout      Layout     `yaml:"layout" json:"layout"`
	Background  Background `yaml:"background" json:"background"`
	Font        Font       `yaml:"font" json:"font"`
	Buttons     Buttons    `yaml:"buttons" json:"buttons"`
}

// AuthOption picks the label of the navbar action button.
type AuthOption string

const (
	AuthLogin  AuthOption = "login"
	AuthSignup AuthOption = "signup"
)

// Label returns "Login" for AuthLogin and "Sign Up" for anything else.
func (a AuthOption) Label() string {
	if a == AuthLogin {
		return "Login"
	}
	return "Sign Up"
}

type NavBackgroundKind string

const (
	NavBackgroundStatic   NavBackgroundKind = "static"
	NavBackgroundGradient NavBackgroundKind = "gradient"
)

// NavBackground paints a navbar with either a flat Color (static) or a
// Start→End gradient towards Direction.
type NavBackground struct {
	Kind      NavBackgroundKind `yaml:"kind" json:"kind"`
	Color     Color             `yaml:"color,omitempty" json:"color,omitempty"`
	Start     Color             `yaml:"start,omitempty" json:"start,omitempty"`
	End       Color             `yaml:"end,omitempty" json:"end,omitempty"`
	Direction Direction         `yaml:"direction,omitempty" json:"direction,omitempty"`
}

type MenuItem struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// NavbarConfig is the configuration record of a navbar block.
type NavbarConfig struct {
	LogoURL    string        `yaml:"logo_url,omitempty" json:"logoUrl,omitempty"`
	Auth       AuthOption    `yaml:"auth" json:"auth"`
	Background NavBackground `yaml:"background" json:"background"`
	MenuItems  []MenuItem    `yaml:"menu_items" json:"menuItems"`
}
