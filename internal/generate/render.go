package generate

import (
	"fmt"
	"strings"

	"github.com/phravins/landinggen/internal/components"
	"github.com/phravins/landinggen/internal/preset"
	"github.com/spf13/cobra"
)

func NewRenderCmd() *cobra.Command {
	var (
		component string
		out       outputOptions
	)
	cmd := &cobra.Command{
		Use:   "render [preset.yaml]",
		Short: "Render a component from a YAML preset",
		Long: `Renders a preset file. The preset either wraps its record as
"component: <name>" plus "config:", or is a bare record and needs --component.
Pass "-" to read the preset from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var doc *preset.Document
			if args[0] == "-" {
				doc, err = preset.Read(cmd.InOrStdin())
			} else {
				doc, err = preset.Open(args[0])
			}
			if err != nil {
				return err
			}

			c, err := components.Resolve(doc, component)
			if err != nil {
				return err
			}
			code, err := c.Render(doc)
			if err != nil {
				return err
			}
			return emit(cmd, cfg, c.Name, args[0], code, out)
		},
	}
	cmd.Flags().StringVarP(&component, "component", "c", "", "Component for bare presets (hero or navbar)")
	out.register(cmd)
	return cmd
}

func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available components",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, c := range components.List() {
				fmt.Fprintf(w, "%-8s %s\n", c.Name, c.Description)
				fmt.Fprintf(w, "         layouts: %s  backgrounds: %s\n",
					strings.Join(c.Layouts, ", "), strings.Join(c.Backgrounds, ", "))
			}
		},
	}
}
