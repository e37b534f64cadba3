package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"ancare/internal/bootstrap"
	cartdto "ancare/internal/modules/cart/dto"
	interestdomain "ancare/internal/modules/interest/domain"
	"ancare/internal/platform/config"
	"ancare/internal/platform/money"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	dir     string
	storage string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "ancare",
		Short:         "an:care storefront state: cart, interest tracking, checkout",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dir, "dir", ".", "state root directory")
	root.PersistentFlags().StringVar(&flags.storage, "storage", "", "storage backend: file|sqlite|memory|blocked")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newCartCmd(flags))
	root.AddCommand(newInterestCmd(flags))
	root.AddCommand(newCheckoutCmd(flags))
	root.AddCommand(newPodcastCmd(flags))
	return root
}

func loadApp(flags *rootFlags) (*bootstrap.App, error) {
	cfg, err := config.New(flags.dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.OverrideStorage(flags.storage); err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(flags *rootFlags, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the an:care terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(flags, bootstrap.RunTUI)
		},
	}
}

func newCartCmd(flags *rootFlags) *cobra.Command {
	cart := &cobra.Command{Use: "cart", Short: "Shopping cart"}

	var rawJSON string
	add := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a product by name or as a JSON record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (rawJSON == "") == (len(args) == 0) {
				return fmt.Errorf("pass either a product name or --json")
			}
			return withApp(flags, func(app *bootstrap.App) error {
				ctx := context.Background()
				var (
					item cartdto.LineItemOutput
					err  error
				)
				if rawJSON != "" {
					item, err = app.CartCLI.AddJSON(ctx, rawJSON)
				} else {
					item, err = app.CartCLI.AddByName(ctx, args[0])
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s x%d (%s)\n", item.ID, item.Qty, money.Format(item.Price))
				return nil
			})
		},
	}
	add.Flags().StringVar(&rawJSON, "json", "", `item record, e.g. '{"name":"Stick Calm","qty":2}'`)

	remove := &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the line at a 0-based position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer: %w", err)
			}
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.CartCLI.RemoveAt(context.Background(), index)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d lines, %d items, %s\n", len(out.Items), out.Count, money.Format(out.Total))
				return nil
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				if err := app.CartCLI.Clear(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cart cleared")
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show cart lines, count and total",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.CartCLI.Show(context.Background())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if len(out.Items) == 0 {
					_, _ = fmt.Fprintln(w, "cart is empty")
					return nil
				}
				for i, item := range out.Items {
					_, _ = fmt.Fprintf(w, "%d\t%s\t%s\tx%d\t%s\n", i, item.ID, item.Name, item.Qty, money.Format(item.Subtotal))
				}
				_, _ = fmt.Fprintf(w, "count: %d\ntotal: %s\n", out.Count, money.Format(out.Total))
				return nil
			})
		},
	}

	cart.AddCommand(add, remove, clearCmd, show)
	return cart
}

func newInterestCmd(flags *rootFlags) *cobra.Command {
	interest := &cobra.Command{Use: "interest", Short: "Demand interest tracking"}

	var variant, name, source, note string
	record := &cobra.Command{
		Use:   "record",
		Short: "Record one expression of interest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.InterestCLI.Record(context.Background(), variant, name, source, note)
				if err != nil {
					return err
				}
				last := out.Events[len(out.Events)-1]
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s at %s (total %d)\n", last.Variant, last.Timestamp, out.Totals[last.Variant])
				return nil
			})
		},
	}
	record.Flags().StringVar(&variant, "variant", "", "product variant (default unknown)")
	record.Flags().StringVar(&name, "name", "", "product name (default an:care)")
	record.Flags().StringVar(&source, "source", "", "where the interest came from (default shop)")
	record.Flags().StringVar(&note, "note", "", "free text note")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show totals per variant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				ctx := context.Background()
				log, err := app.InterestCLI.Show(ctx)
				if err != nil {
					return err
				}
				ranking, err := app.InterestCLI.Ranking(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "state: %s\nevents: %d\n", log.State, len(log.Events))
				for _, r := range ranking {
					_, _ = fmt.Fprintf(w, "%s\t%d\n", r.Variant, r.Count)
				}
				return nil
			})
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Forget all recorded interest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				if err := app.InterestCLI.Reset(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "interest reset")
				return nil
			})
		},
	}

	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Export events as semicolon separated text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				text, err := app.InterestCLI.Export(context.Background())
				if err != nil {
					return err
				}
				if outPath == "-" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
					return nil
				}
				if err := atomic.WriteFile(outPath, strings.NewReader(text)); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", outPath)
				return nil
			})
		},
	}
	export.Flags().StringVar(&outPath, "out", interestdomain.ExportFileName, "output file, - for stdout")

	verify := &cobra.Command{
		Use:   "verify",
		Short: "Compare running totals with a recount of the events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.InterestCLI.Verify(context.Background())
				if err != nil {
					return err
				}
				if out.Consistent {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "totals consistent")
					return nil
				}
				for _, variant := range out.Drift {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "drift %s: stored=%d recount=%d\n", variant, out.Totals[variant], out.Recount[variant])
				}
				return nil
			})
		},
	}

	interest.AddCommand(record, show, reset, export, verify)
	return interest
}

func newCheckoutCmd(flags *rootFlags) *cobra.Command {
	checkout := &cobra.Command{Use: "checkout", Short: "Checkout preferences and summary"}

	checkout.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show subtotal, shipping and total",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.CheckoutCLI.Show(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "items: %d\nsubtotal: %s\nshipping: %s (%s)\npayment: %s\ntotal: %s\n",
					out.ItemCount, money.Format(out.Subtotal), out.Shipping, money.Format(out.Surcharge), out.Payment, money.Format(out.Total))
				return nil
			})
		},
	})

	checkout.AddCommand(&cobra.Command{
		Use:   "shipping <code>",
		Short: "Choose shipping: dhl|pickup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.CheckoutCLI.SetShipping(context.Background(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "shipping: %s\n", out.Shipping)
				return nil
			})
		},
	})

	checkout.AddCommand(&cobra.Command{
		Use:   "payment <code>",
		Short: "Choose payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.CheckoutCLI.SetPayment(context.Background(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "payment: %s\n", out.Payment)
				return nil
			})
		},
	})
	return checkout
}

func newPodcastCmd(flags *rootFlags) *cobra.Command {
	podcast := &cobra.Command{Use: "podcast", Short: "Podcast episode list"}

	podcast.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Replace the stored episodes with the built-in list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				episodes, err := app.PodcastCLI.Seed(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d episodes\n", len(episodes))
				return nil
			})
		},
	})

	podcast.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored episodes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				episodes, err := app.PodcastCLI.List(context.Background())
				if err != nil {
					return err
				}
				if len(episodes) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no episodes")
					return nil
				}
				for _, e := range episodes {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "#%d\t%s\t%s\t%s\n", e.Number, e.Title, e.Duration, e.Published)
				}
				return nil
			})
		},
	})
	return podcast
}
