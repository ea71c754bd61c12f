package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
	"github.com/custodia-labs/hotwatch/internal/core/services"
	"github.com/custodia-labs/hotwatch/internal/logger"
)

// portSuggestionRange is how many ports above a busy one config check probes.
const portSuggestionRange = 100

var (
	configShowJSON   bool
	configWriteForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the watch configuration",
	Long: `Load and display the watch configuration: the port the hot-swap agent
listens on and the folders watched for recompiled classes.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the watch configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Show where the configuration comes from",
	Args:  cobra.NoArgs,
	RunE:  runConfigSource,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long: `Load the configuration and report whether it is usable. Exits non-zero
when no configuration source is bound or loading fails. A busy port is
reported as a warning with a free alternative.`,
	Args: cobra.NoArgs,
	RunE: runConfigCheck,
}

var configWriteCmd = &cobra.Command{
	Use:   "write [path]",
	Short: "Write the resolved configuration to a file",
	Long: `Resolve the configuration from the active sources and write it to a
file (default hotwatch.toml). The format follows the extension: .toml,
.yaml/.yml or .json/.jsonc. An existing file is kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigWrite,
}

func init() {
	configCmd.PersistentFlags().BoolVar(&configShowJSON, "json", false, "output as JSON")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSourceCmd)
	configCmd.AddCommand(configCheckCmd)
	configWriteCmd.Flags().BoolVarP(&configWriteForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configWriteCmd)
	rootCmd.AddCommand(configCmd)
}

// jsonConfiguration is the machine-readable form printed by --json.
type jsonConfiguration struct {
	Source  string       `json:"source,omitempty"`
	Port    int          `json:"port"`
	Folders []jsonFolder `json:"folders"`
}

type jsonFolder struct {
	Path       string   `json:"path"`
	IntervalMS int64    `json:"interval_ms"`
	Patterns   []string `json:"patterns"`
	Recursive  bool     `json:"recursive"`
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configurationService == nil {
		return errRegistryNotConfigured
	}

	cfg, err := configurationService.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	source, _ := configurationService.Source()

	if configShowJSON {
		return outputConfigJSON(cmd, cfg, source)
	}

	styled := isTerminal(cmd.OutOrStdout())
	cmd.Print(renderConfiguration(cfg, source, styled))
	return nil
}

func runConfigSource(cmd *cobra.Command, _ []string) error {
	if configurationService == nil {
		return errRegistryNotConfigured
	}

	// Loading first lets a chain report the source that actually answered.
	if _, err := configurationService.Load(cmd.Context()); err != nil && !errors.Is(err, domain.ErrConfigurationLoad) {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	source, err := configurationService.Source()
	if err != nil {
		return err
	}
	cmd.Println(source)
	return nil
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	if configurationService == nil {
		return errRegistryNotConfigured
	}

	cfg, err := configurationService.Load(cmd.Context())
	switch {
	case errors.Is(err, domain.ErrPortNotConfigured):
		return fmt.Errorf("no configuration source is bound: %w", err)
	case errors.Is(err, domain.ErrConfigurationNotFound):
		return fmt.Errorf("no configuration found: %w", err)
	case err != nil:
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	cmd.Printf("OK: port %d, %d folder(s)\n", cfg.Port(), len(cfg.Folders()))
	if logger.IsVerbose() {
		if source, srcErr := configurationService.Source(); srcErr == nil {
			cmd.Printf("source: %s\n", source)
		}
	}

	for _, f := range cfg.Folders() {
		if info, statErr := os.Stat(f.Path); statErr != nil || !info.IsDir() {
			cmd.Printf("warning: %s is not a directory\n", f.Path)
		}
	}
	if portErr := services.CheckPortAvailable(cfg.Port()); portErr != nil {
		cmd.Printf("warning: %v\n", portErr)
		end := min(cfg.Port()+portSuggestionRange, 65535)
		if free, findErr := services.FindAvailablePort(cfg.Port()+1, end); findErr == nil {
			cmd.Printf("hint: port %d is free\n", free)
		}
	}
	return nil
}

func runConfigWrite(cmd *cobra.Command, args []string) error {
	if configurationService == nil || configWriter == nil {
		return errRegistryNotConfigured
	}

	path := defaultConfigFile
	if len(args) == 1 {
		path = args[0]
	}

	if !configWriteForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	cfg, err := configurationService.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := configWriter(path, cfg); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Get().Debug().Str("path", path).Msg("configuration written")
	cmd.Printf("Wrote %s\n", path)
	return nil
}

func outputConfigJSON(cmd *cobra.Command, cfg *domain.WatchConfiguration, source string) error {
	out := jsonConfiguration{Source: source, Port: cfg.Port()}
	for _, f := range cfg.Folders() {
		out.Folders = append(out.Folders, jsonFolder{
			Path:       f.Path,
			IntervalMS: f.Interval.Milliseconds(),
			Patterns:   f.Patterns,
			Recursive:  f.Recursive,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
)

// renderConfiguration formats cfg for humans. Styling is applied only when
// writing to a terminal.
func renderConfiguration(cfg *domain.WatchConfiguration, source string, styled bool) string {
	title, label, value := fmt.Sprint, fmt.Sprint, fmt.Sprint
	if styled {
		title = func(a ...any) string { return titleStyle.Render(fmt.Sprint(a...)) }
		label = func(a ...any) string { return labelStyle.Render(fmt.Sprint(a...)) }
		value = func(a ...any) string { return valueStyle.Render(fmt.Sprint(a...)) }
	}

	var b strings.Builder
	b.WriteString(title("Watch Configuration") + "\n")
	if source != "" {
		fmt.Fprintf(&b, "  %s %s\n", label("Source:"), value(source))
	}
	fmt.Fprintf(&b, "  %s %s\n", label("Port:"), value(cfg.Port()))
	b.WriteString("\n")

	for i, f := range cfg.Folders() {
		fmt.Fprintf(&b, "  [%d] %s\n", i+1, value(f.Path))
		fmt.Fprintf(&b, "      %s %s\n", label("Interval:"), f.Interval)
		fmt.Fprintf(&b, "      %s %s\n", label("Patterns:"), strings.Join(f.Patterns, ", "))
		fmt.Fprintf(&b, "      %s %t\n", label("Recursive:"), f.Recursive)
	}
	return b.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
