// Package generate holds the cobra commands that print component code.
package generate

import (
	"fmt"

	"github.com/phravins/landinggen/internal/clipboard"
	"github.com/phravins/landinggen/internal/config"
	"github.com/phravins/landinggen/internal/highlight"
	"github.com/phravins/landinggen/internal/history"
	"github.com/phravins/landinggen/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	loadConfig                       = config.LoadConfig
	clipboardWriter clipboard.Writer = clipboard.System{}
	openHistory                      = history.Open
)

type outputOptions struct {
	copy      bool
	highlight bool
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.copy, "copy", false, "Copy the generated code to the clipboard")
	cmd.Flags().BoolVar(&o.highlight, "highlight", false, "Syntax highlight the code for the terminal")
}

// emit prints code, records it in the history and copies it when asked to.
// A failed copy is an error only when --copy was given; auto_copy just warns.
func emit(cmd *cobra.Command, cfg *config.Config, component, source, code string, o outputOptions) error {
	record(cmd, component, source, code)

	out := code
	if o.highlight {
		out = highlight.Terminal(code, cfg.HighlightStyle)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if !o.copy && !cfg.AutoCopy {
		return nil
	}
	msg, err := clipboard.Copy(clipboardWriter, code)
	if err != nil {
		if o.copy {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		return nil
	}
	utils.FprintSuccess(cmd.ErrOrStderr(), msg)
	return nil
}

// setString calls set with the flag value only when the user passed it.
func setString(fs *pflag.FlagSet, name string, set func(string)) {
	if !fs.Changed(name) {
		return
	}
	v, _ := fs.GetString(name)
	set(v)
}

func record(cmd *cobra.Command, component, source, code string) {
	store, err := openHistory()
	if err == nil {
		err = store.Add(component, source, len(code))
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: history: %v\n", err)
	}
}

func sourceOf(file string) string {
	if file == "" {
		return "flags"
	}
	return file
}
