package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/roadmap/internal/gemini"
	"github.com/idilsaglam/roadmap/internal/store/export"
	"github.com/idilsaglam/roadmap/internal/ui"
)

func newGenerateCmd(d deps, f *rootFlags) *cobra.Command {
	var userContext, format, out string

	cmd := &cobra.Command{
		Use:   "generate <goal...>",
		Short: "Generate a roadmap without the interactive UI",
		Example: `  roadmap generate "Bank PO"
  roadmap generate UPSC CSE --context "working professional, 2 years" --format yaml
  roadmap generate "Product Manager" --out pm.json`,
		Args: func(_ *cobra.Command, args []string) error {
			if strings.TrimSpace(strings.Join(args, " ")) == "" {
				return usagef("generate: a goal is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fm, err := export.ParseFormat(format)
			if err != nil {
				return usageError{err}
			}
			if out != "" && !cmd.Flags().Changed("format") {
				fm = export.FormatFromPath(out, fm)
			}

			s, err := open(d, *f)
			if err != nil {
				return err
			}
			defer s.close()

			ctx := cmd.Context()
			p, err := d.newPlanner(ctx, s.cfg, s.log)
			if err != nil {
				return err
			}
			r, err := p.Generate(ctx, strings.Join(args, " "), userContext)
			if err != nil {
				return err
			}

			if out == "" {
				return export.Write(cmd.OutOrStdout(), r, fm)
			}
			if err := export.Save(out, r, fm); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "saved "+out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&userContext, "context", "c", "", "optional context (experience, time available)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text|json|yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func newShowCmd(d deps, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Render a saved roadmap (.json or .yaml)",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("usage: roadmap show <file>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(d, *f)
			if err != nil {
				return err
			}
			defer s.close()

			r, err := export.Load(args[0])
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), r, export.FormatText)
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the structured-output schema sent with every request",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := json.MarshalIndent(gemini.RoadmapSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}

func newConfigCmd(d deps, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := d.loadConfig(f.configPath)
			if err != nil {
				return err
			}
			if f.theme != "" {
				cfg.Theme = f.theme
			}
			ui.SetTheme(cfg.Theme)
			t := ui.Current()

			file := cfg.Path
			if file == "" {
				file = "(defaults, no file)"
			}
			source := cfg.KeySource
			if source == "" {
				source = "-"
			}
			row := func(k, v string) string {
				return fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%-9s", k)), v)
			}

			lines := []string{
				t.Title.Render("Configuration"),
				"",
				row("file", file),
				row("model", cfg.Model),
				row("timeout", cfg.Timeout.String()),
				row("theme", ui.Current().Name),
				row("log", cfg.LogFile+" ("+cfg.LogMode+")"),
				row("api key", cfg.MaskedKey()+"  "+t.Muted.Render("from "+source)),
			}
			if err := cfg.Validate(); err != nil {
				lines = append(lines, "", t.Error.Render("✖ "+err.Error()))
			} else {
				lines = append(lines, "", t.Success.Render("✔ ready"))
			}
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}
