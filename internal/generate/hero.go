package generate

import (
	"github.com/phravins/landinggen/internal/markup"
	"github.com/phravins/landinggen/internal/preset"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewHeroCmd() *cobra.Command {
	var (
		file string
		out  outputOptions
	)
	cmd := &cobra.Command{
		Use:   "hero",
		Short: "Generate a hero section",
		Long: `Prints the JSX for a full-viewport hero section. Values start from the
hero defaults in ~/.landinggen.yaml (or the --file preset) and flags override them.`,
		Example: `  landinggen hero --heading "Build faster" --layout split --background gradient
  landinggen hero -f hero.yaml --buttons --primary-text "Get Started" --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			hero := cfg.InitialHero()
			if file != "" {
				if hero, err = preset.LoadHero(file); err != nil {
					return err
				}
			}
			applyHeroFlags(cmd.Flags(), &hero)
			return emit(cmd, cfg, "hero", sourceOf(file), markup.RenderHero(hero), out)
		},
	}

	f := cmd.Flags()
	f.String("heading", "", "Heading text")
	f.String("description", "", "Description text")
	f.String("layout", "", "Layout: centered, split or minimal")
	f.String("background", "", "Background kind: image, gradient or solid")
	f.String("url", "", "Background image URL")
	f.String("from", "", "Gradient start color")
	f.String("to", "", "Gradient end color")
	f.String("direction", "", "Gradient direction: right, left, bottom or top")
	f.String("color", "", "Solid background color")
	f.String("font", "", "Font family: sans, serif or mono")
	f.Bool("buttons", false, "Show the call-to-action buttons")
	f.String("primary-text", "", "Primary button label")
	f.String("primary-color", "", "Primary button color")
	f.String("secondary-text", "", "Secondary button label")
	f.String("secondary-color", "", "Secondary button color")
	f.StringVarP(&file, "file", "f", "", "Start from a YAML preset")
	out.register(cmd)
	return cmd
}

// applyHeroFlags overlays the flags the user set onto h. Giving a button
// label turns the button row on unless --buttons says otherwise.
func applyHeroFlags(fs *pflag.FlagSet, h *markup.HeroConfig) {
	setString(fs, "heading", func(v string) { h.Heading = v })
	setString(fs, "description", func(v string) { h.Description = v })
	setString(fs, "layout", func(v string) { h.Layout = markup.Layout(v) })
	setString(fs, "font", func(v string) { h.Font = markup.Font(v) })

	bg := &h.Background
	setString(fs, "background", func(v string) { bg.Kind = markup.BackgroundKind(v) })
	setString(fs, "url", func(v string) { bg.URL = v })
	setString(fs, "from", func(v string) { bg.From = markup.Color(v) })
	setString(fs, "to", func(v string) { bg.To = markup.Color(v) })
	setString(fs, "direction", func(v string) { bg.Direction = markup.Direction(v) })
	setString(fs, "color", func(v string) { bg.Color = markup.Color(v) })

	b := &h.Buttons
	setString(fs, "primary-text", func(v string) { button(&b.Primary).Text = v })
	setString(fs, "primary-color", func(v string) { button(&b.Primary).Color = markup.Color(v) })
	setString(fs, "secondary-text", func(v string) { button(&b.Secondary).Text = v })
	setString(fs, "secondary-color", func(v string) { button(&b.Secondary).Color = markup.Color(v) })

	if fs.Changed("buttons") {
		b.Enabled, _ = fs.GetBool("buttons")
	} else if fs.Changed("primary-text") || fs.Changed("secondary-text") {
		b.Enabled = true
	}
}

func button(p **markup.ButtonSpec) *markup.ButtonSpec {
	if *p == nil {
		*p = &markup.ButtonSpec{}
	}
	return *p
}
