package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikolayk812/airport-services/internal/service"
	"github.com/nikolayk812/airport-services/internal/tui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive terminal UI",
		Long: `Launch the interactive terminal UI.

Controls:
  ←/→/↑/↓  - Move between service cards
  Enter/a  - Add the highlighted service
  Tab      - Switch between catalog and order summary
  x        - Remove the highlighted summary line
  p        - Place order
  /        - Filter services
  ?        - Toggle help
  q        - Quit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	rt, err := newRuntime(opts, true)
	if err != nil {
		return err
	}
	defer rt.close()

	deps := tui.Deps{Catalog: rt.catalog}
	serviceOpts := []service.Option{service.WithLogger(rt.logger)}
	if rt.cfg.UI.ConfirmOrders {
		deps.Notifier = tui.NewNotifier()
		serviceOpts = append(serviceOpts, service.WithAcknowledger(deps.Notifier))
	}
	deps.Cart = service.NewCart(rt.catalog, serviceOpts...)

	app, err := tui.NewApp(deps)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
