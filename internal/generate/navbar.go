package generate

import (
	"github.com/phravins/landinggen/internal/markup"
	"github.com/phravins/landinggen/internal/preset"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewNavbarCmd() *cobra.Command {
	var (
		file string
		out  outputOptions
	)
	cmd := &cobra.Command{
		Use:   "navbar",
		Short: "Generate a navigation bar",
		Example: `  landinggen navbar --logo /logo.svg --auth signup --item Home --item Pricing
  landinggen navbar --background gradient --start "#ffffff" --end "#000000" --direction bottom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			nav := cfg.InitialNavbar()
			if file != "" {
				if nav, err = preset.LoadNavbar(file); err != nil {
					return err
				}
			}
			applyNavbarFlags(cmd.Flags(), &nav)
			return emit(cmd, cfg, "navbar", sourceOf(file), markup.RenderNavbar(nav), out)
		},
	}

	f := cmd.Flags()
	f.String("logo", "", "Logo image URL")
	f.String("auth", "", "Auth button: login or signup")
	f.String("background", "", "Background kind: static or gradient")
	f.String("color", "", "Static background color")
	f.String("start", "", "Gradient start color")
	f.String("end", "", "Gradient end color")
	f.String("direction", "", "Gradient direction: right, left, bottom or top")
	f.StringArrayP("item", "i", nil, "Append a menu item (repeatable)")
	f.StringVarP(&file, "file", "f", "", "Start from a YAML preset")
	out.register(cmd)
	return cmd
}

// applyNavbarFlags overlays the flags the user set onto n. --item values are
// appended after any items the preset already has.
func applyNavbarFlags(fs *pflag.FlagSet, n *markup.NavbarConfig) {
	setString(fs, "logo", func(v string) { n.LogoURL = v })
	setString(fs, "auth", func(v string) { n.Auth = markup.AuthOption(v) })

	bg := &n.Background
	setString(fs, "background", func(v string) { bg.Kind = markup.NavBackgroundKind(v) })
	setString(fs, "color", func(v string) { bg.Color = markup.Color(v) })
	setString(fs, "start", func(v string) { bg.Start = markup.Color(v) })
	setString(fs, "end", func(v string) { bg.End = markup.Color(v) })
	setString(fs, "direction", func(v string) { bg.Direction = markup.Direction(v) })

	names, _ := fs.GetStringArray("item")
	if len(names) == 0 {
		return
	}
	menu := markup.NewMenu(n.MenuItems...)
	for _, name := range names {
		menu.Add(name)
	}
	n.MenuItems = menu.Items()
}
