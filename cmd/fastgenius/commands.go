package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alkime/fastgenius/internal/export"
	"github.com/alkime/fastgenius/internal/generation"
	"github.com/alkime/fastgenius/internal/keyring"
	"github.com/alkime/fastgenius/internal/templates"
	"github.com/alkime/fastgenius/internal/tui/generating"
	"github.com/alkime/fastgenius/internal/tui/style"
	"github.com/alkime/fastgenius/pkg/collections"
	tea "github.com/charmbracelet/bubbletea"
)

// errCanceled is returned when the user quits while waiting on generation.
var errCanceled = errors.New("generation canceled")

// TemplatesCmd lists the registered templates.
type TemplatesCmd struct {
	Filter string `flag:"" short:"f" optional:"" help:"Only show templates whose id or name contains this text"`
}

// Run executes the templates command.
//
//nolint:unparam // error return required by Kong interface
func (c *TemplatesCmd) Run() error {
	out := renderTemplateList(templates.Default(), c.Filter)
	if out == "" {
		fmt.Fprintln(os.Stdout, style.Warning.Render("No templates match "+c.Filter))
		return nil
	}

	fmt.Fprintln(os.Stdout, out)

	return nil
}

// renderTemplateList formats one entry per template, sorted by identifier.
// A non-empty filter keeps templates whose id or name contains it, ignoring case.
func renderTemplateList(reg *templates.Registry, filter string) string {
	listing := reg.List()
	needle := strings.ToLower(filter)
	ids := collections.Filter(reg.IDs(), func(id string) bool {
		return strings.Contains(id, needle) || strings.Contains(strings.ToLower(listing[id].Name), needle)
	})

	lines := collections.Apply(ids, func(id string) string {
		info := listing[id]
		return fmt.Sprintf("%s  %s\n    %s",
			style.Label.Render(id),
			style.Title.Render(info.Name),
			style.Muted.Render(info.Description),
		)
	})

	return strings.Join(lines, "\n")
}

// GenerateCmd renders a template and sends it to the completion API.
type GenerateCmd struct {
	Topic       string `arg:"" help:"Topic, message or question to write about"`
	Template    string `flag:"" short:"t" default:"quickwriter" help:"Template identifier (see 'fastgenius templates')"`
	Tone        string `flag:"" default:"professional" help:"Tone of the output"`
	Length      string `flag:"" default:"medium" help:"Length of the output"`
	Language    string `flag:"" default:"english" help:"Output language"`
	ContentType string `flag:"" name:"content-type" default:"article" help:"Kind of content (QuickWriter only)"`
	Output      string `flag:"" short:"o" optional:"" help:"Also write the result as a .txt export to this path"`
	Plain       bool   `flag:"" help:"Skip the spinner (for scripts and pipes)"`
	APIKey      string `flag:"" name:"api-key" env:"TOGETHER_API_KEY" help:"Together API key"`
	BaseURL     string `flag:"" name:"base-url" env:"TOGETHER_BASE_URL" default:"https://api.together.xyz/v1/" help:"Completion API base URL"`
	Model       string `flag:"" env:"TOGETHER_MODEL" default:"mistralai/Mixtral-8x7B-Instruct-v0.1" help:"Model name"`
}

// Run executes the generate command.
func (c *GenerateCmd) Run() error {
	if strings.TrimSpace(c.Topic) == "" {
		return errors.New("topic is required")
	}

	tmpl, err := templates.Default().Get(c.Template)
	if err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	// Resolve API key: environment variable takes priority, fallback to keychain
	apiKey, err := keyring.Resolve(keyring.Together, c.APIKey)
	if err != nil {
		slog.Debug("keychain lookup failed", "key", "together", "error", err)
		return errors.New(
			"missing Together API key: set TOGETHER_API_KEY or run 'fastgenius config set-key <key>'",
		)
	}

	client, err := generation.NewClient(generation.Settings{
		APIKey:  apiKey,
		BaseURL: c.BaseURL,
		Model:   c.Model,
	}, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}

	prompt := tmpl.Render(templates.Params{
		ContentType: c.ContentType,
		Topic:       c.Topic,
		Tone:        c.Tone,
		Length:      c.Length,
		Language:    c.Language,
	}.WithDefaults())

	outcome, err := c.generate(client, tmpl.Name, prompt)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, renderResult(outcome))

	if outcome.Failed() {
		return fmt.Errorf("generation failed: %w", outcome.Err)
	}

	if c.Output != "" {
		return writeExport(os.Stdout, c.Output, outcome.Result.Title, outcome.Result.Content)
	}

	return nil
}

func (c *GenerateCmd) generate(gen generating.Generator, templateName, prompt string) (generation.Outcome, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if c.Plain {
		return gen.Generate(ctx, prompt), nil
	}

	final, err := tea.NewProgram(generating.New(ctx, gen, templateName, prompt)).Run()
	if err != nil {
		return generation.Outcome{}, fmt.Errorf("failed to run generating TUI: %w", err)
	}

	model, ok := final.(generating.Model)
	if !ok {
		return generation.Outcome{}, errors.New("unexpected TUI model type")
	}

	outcome, done := model.Outcome()
	if !done {
		return generation.Outcome{}, errCanceled
	}

	return outcome, nil
}

// renderResult formats a generation outcome for the terminal.
func renderResult(outcome generation.Outcome) string {
	if outcome.Failed() {
		return style.Error.Render(outcome.Result.Title+": ") + outcome.Result.Content
	}

	var sb strings.Builder
	sb.WriteString(style.Title.Render(outcome.Result.Title))
	if outcome.Status == generation.StatusFallback {
		sb.WriteString(" ")
		sb.WriteString(style.Warning.Render("(unstructured reply)"))
	}
	sb.WriteString("\n")
	sb.WriteString(style.Document.Render(outcome.Result.Content))

	return sb.String()
}

// ExportCmd writes content from a file as an export document.
type ExportCmd struct {
	File   string `arg:"" help:"File holding the content to export ('-' for stdin)"`
	Title  string `flag:"" default:"Generated Content" help:"Document title"`
	Output string `flag:"" short:"o" optional:"" help:"Output path (default: slug of the title in the current directory)"`
}

// Run executes the export command.
func (c *ExportCmd) Run() error {
	content, err := readContent(c.File)
	if err != nil {
		return err
	}

	return writeExport(os.Stdout, c.Output, c.Title, content)
}

func readContent(path string) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}

	return string(data), nil
}

// writeExport builds the export document and writes it to path, or to the
// title's slug filename when path is empty.
func writeExport(w io.Writer, path, title, content string) error {
	doc, err := export.Build(title, content)
	if err != nil {
		return fmt.Errorf("failed to build export: %w", err)
	}

	if path == "" {
		path = doc.Filename
	}

	//nolint:gosec // Export files need to be readable
	if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
		return fmt.Errorf("failed to write export to %s: %w", path, err)
	}

	fmt.Fprintf(w, "%s %s\n", style.Success.Render("Saved:"), style.Muted.Render(path))

	return nil
}

// ConfigCmd groups configuration-related subcommands.
type ConfigCmd struct {
	SetKey    SetKeyCmd    `cmd:"" help:"Store the Together API key in system keychain"`
	DeleteKey DeleteKeyCmd `cmd:"" name:"delete-key" help:"Remove the Together API key from system keychain"`
	Status    StatusCmd    `cmd:"" help:"Show whether the API key is configured"`
}

// SetKeyCmd stores the API key in the system keychain.
type SetKeyCmd struct {
	Secret string `arg:"" help:"API key value"`
}

// Run executes the set-key command.
func (c *SetKeyCmd) Run() error {
	if strings.TrimSpace(c.Secret) == "" {
		return errors.New("API key cannot be empty")
	}

	if err := keyring.Set(keyring.Together, c.Secret); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	fmt.Printf("%s API key stored in keychain\n", keyring.Together.DisplayName())

	return nil
}

// DeleteKeyCmd removes the API key from the system keychain.
type DeleteKeyCmd struct{}

// Run executes the delete-key command.
func (c *DeleteKeyCmd) Run() error {
	if err := keyring.Delete(keyring.Together); err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}

	fmt.Printf("%s API key removed from keychain\n", keyring.Together.DisplayName())

	return nil
}

// StatusCmd shows which API keys are configured.
type StatusCmd struct{}

// Run executes the status command.
//
//nolint:unparam // error return required by Kong interface
func (c *StatusCmd) Run() error {
	fromEnv := os.Getenv("TOGETHER_API_KEY") != ""

	for _, apiKey := range keyring.AllAPIKeys() {
		switch {
		case fromEnv:
			fmt.Printf("%s: configured (environment)\n", apiKey.DisplayName())
		case keyring.IsSet(apiKey):
			fmt.Printf("%s: configured (keychain)\n", apiKey.DisplayName())
		default:
			fmt.Printf("%s: not set\n", apiKey.DisplayName())
			fmt.Println("\nRun 'fastgenius config set-key <key>' to configure.")
		}
	}

	return nil
}
