package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nikolayk812/airport-services/internal/domain"
	"github.com/nikolayk812/airport-services/internal/port"
	"github.com/nikolayk812/airport-services/internal/service"
)

type orderOptions struct {
	add    []string
	remove []string
	dryRun bool
}

func newOrderCmd(opts *rootOptions) *cobra.Command {
	orderOpts := &orderOptions{}

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Build a cart from flags and place the order",
		Long: `Build a cart without the interactive UI and place the order.

Adds are applied first, in flag order, then removes. Adding the same service
again increases its quantity; removing a service drops the whole line.

Example:
  airport-services order --add 2 --add 2 --add 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(opts, false)
			if err != nil {
				return err
			}
			defer rt.close()

			out := cmd.OutOrStdout()
			cart := service.NewCart(rt.catalog,
				service.WithLogger(rt.logger),
				service.WithAcknowledger(printAcknowledger(out)),
			)

			return runOrder(out, cart, orderOpts)
		},
	}

	cmd.Flags().StringArrayVarP(&orderOpts.add, "add", "a", nil, "service ID to add (repeatable)")
	cmd.Flags().StringArrayVarP(&orderOpts.remove, "remove", "r", nil, "service ID to remove (repeatable)")
	cmd.Flags().BoolVar(&orderOpts.dryRun, "dry-run", false, "print the summary without placing the order")

	return cmd
}

func runOrder(out io.Writer, cart port.CartController, opts *orderOptions) error {
	for _, id := range opts.add {
		if _, err := cart.AddByID(id); err != nil {
			return fmt.Errorf("cart.AddByID: %w", err)
		}
	}
	for _, id := range opts.remove {
		cart.Remove(id)
	}

	fmt.Fprintln(out, summary(cart.Items(), cart.Total()))

	if opts.dryRun {
		return nil
	}

	cart.PlaceOrder()
	return nil
}

func summary(items []domain.CartItem, total domain.Money) string {
	if len(items) == 0 {
		return "No services selected\nTotal: " + total.String()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SERVICE", "PRICE", "QTY", "LINE TOTAL")

	for _, item := range items {
		t.Row(item.Service.Name, item.Service.Price.String(), fmt.Sprint(item.Quantity), item.LineTotal().String())
	}

	return t.String() + "\nTotal: " + total.String()
}

func printAcknowledger(out io.Writer) port.Acknowledger {
	return port.AcknowledgerFunc(func(order domain.Order) {
		fmt.Fprintf(out, "Order placed successfully! (order %s)\n", order.ID)
	})
}
