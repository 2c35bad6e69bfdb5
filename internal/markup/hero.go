package markup

type heroView struct {
	Split            bool
	Image            bool
	ImageURL         string
	FontClass        string
	OuterClass       string
	OverlayClass     string
	HeadingClass     string
	DescriptionClass string
	Heading          string
	Description      string
	Declaration      string
	ShowButtons      bool
	Primary          *ButtonSpec
	Secondary        *ButtonSpec
}

// RenderHero returns the JSX component for cfg.
//
// The split layout puts the text on a left pane and the background on a right
// pane. Every other layout renders a single full-viewport block; centered
// dims image backgrounds with a mask, minimal never does and uses lighter
// type.
func RenderHero(cfg HeroConfig) string {
	return execute("hero.jsx.tmpl", newHeroView(cfg))
}

func newHeroView(cfg HeroConfig) heroView {
	image := cfg.Background.Kind == BackgroundImage
	v := heroView{
		Split:       cfg.Layout == LayoutSplit,
		Image:       image,
		ImageURL:    cfg.Background.URL,
		FontClass:   cfg.Font.Class(),
		Heading:     cfg.Heading,
		Description: cfg.Description,
		Declaration: cfg.Background.Declaration(),
	}

	if cfg.Buttons.Enabled {
		v.Primary = visibleButton(cfg.Buttons.Primary)
		v.Secondary = visibleButton(cfg.Buttons.Secondary)
		v.ShowButtons = v.Primary != nil || v.Secondary != nil
	}

	v.OuterClass = "relative w-full h-screen " + v.FontClass
	if image {
		v.OuterClass += " bg-cover bg-center"
	}

	v.OverlayClass = "absolute inset-0 flex flex-col items-center justify-center text-white"
	switch cfg.Layout {
	case LayoutMinimal:
		v.HeadingClass = "text-3xl md:text-5xl font-light tracking-tight"
		v.DescriptionClass = "text-lg md:text-xl mt-4 text-white/70"
	default:
		if image {
			v.OverlayClass = "absolute inset-0 bg-black/50 flex flex-col items-center justify-center text-white"
		}
		v.HeadingClass = "text-4xl md:text-6xl font-bold"
		v.DescriptionClass = "text-xl md:text-2xl mt-4"
	}
	return v
}

// visibleButton drops buttons without a label.
func visibleButton(b *ButtonSpec) *ButtonSpec {
	if b == nil || b.Text == "" {
		return nil
	}
	return b
}
