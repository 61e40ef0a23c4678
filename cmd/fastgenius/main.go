package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// CLI defines the fastgenius command structure.
type CLI struct {
	Templates TemplatesCmd `cmd:"" help:"List available templates"`
	Generate  GenerateCmd  `cmd:"" help:"Generate content from a template"`
	Export    ExportCmd    `cmd:"" help:"Export content as a plain-text document"`
	Config    ConfigCmd    `cmd:"" help:"Manage configuration"`
}

func main() {
	// Set up text-based logger for CLI output
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("fastgenius"),
		kong.Description("Generate articles, replies, bios and more from prompt templates."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
