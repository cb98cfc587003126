package cmd

import (
	"github.com/fatih/color"
	"github.com/josephlewis42/tinysh/core/config"
)

// Prompt returns the configured prompt, colored if the configuration asks
// for it.
func Prompt(cfg *config.Configuration, isTerminal bool) string {
	if !cfg.ShouldColor(isTerminal) {
		return cfg.Prompt
	}

	c := color.New(color.FgGreen, color.Bold)
	c.EnableColor()
	return c.Sprint(cfg.Prompt)
}
