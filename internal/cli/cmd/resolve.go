package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumber-mobile/internal/cli/model"
	"github.com/bnema/dumber-mobile/internal/cli/styles"
	"github.com/bnema/dumber-mobile/internal/domain/url"
	"github.com/bnema/dumber-mobile/internal/logging"
)

var resolveQuiet bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [text]",
	Short: "Show how the address field interprets text",
	Long: `Normalize text the way the address field does and report whether it
would be loaded.

Without an argument an interactive prompt previews the result while you type.

Examples:
  dumber-mobile resolve Example.com        # https:example.com
  dumber-mobile resolve -q about:blank     # prints only the address
  dumber-mobile resolve                    # interactive prompt`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVarP(&resolveQuiet, "quiet", "q", false, "print only the resolved address")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	if len(args) == 0 {
		return runResolveInteractive(cmd, app.Theme)
	}

	raw := strings.Join(args, " ")
	resolved, err := url.Resolve(raw)
	logging.FromContext(app.Ctx()).Debug().
		Str("raw", raw).
		Str("resolved", resolved).
		Err(err).
		Msg("resolve")

	out := cmd.OutOrStdout()
	if err != nil {
		if !resolveQuiet {
			fmt.Fprintln(out, styles.NewResolveRenderer(app.Theme).RenderRejected(raw, err))
		}
		return fmt.Errorf("resolve %q: %w", raw, err)
	}

	if resolveQuiet {
		fmt.Fprintln(out, resolved)
		return nil
	}
	fmt.Fprintln(out, styles.NewResolveRenderer(app.Theme).RenderAccepted(raw, resolved, url.ExtractDomain(resolved)))
	return nil
}

func runResolveInteractive(cmd *cobra.Command, theme *styles.Theme) error {
	p := tea.NewProgram(model.NewResolveModel(theme, ""), tea.WithOutput(cmd.ErrOrStderr()))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(model.ResolveModel)
	if !ok || !m.Submitted {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), m.Resolved())
	return nil
}
