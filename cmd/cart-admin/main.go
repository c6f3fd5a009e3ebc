package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/cart"
	"github.com/retropixel/storefront/internal/config"
	"github.com/retropixel/storefront/internal/repository"
)

var rootCmd = &cobra.Command{
	Use:   "cart-admin",
	Short: "Inspect and reset stored carts",
	Long: `Operate on carts in the configured storage backend (CART_STORAGE).

Available subcommands:
  show  - Print the lines and total of a cart session
  clear - Delete the stored cart for a session`,
}

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print a stored cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var clearCmd = &cobra.Command{
	Use:   "clear <session-id>",
	Short: "Delete a stored cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(showCmd, clearCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openBackend loads configuration and opens the storage backend it names
func openBackend(ctx context.Context, sessionID string) (repository.KeyValue, func(), error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, nil, fmt.Errorf("session id must be a UUID: %w", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()

	kv, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, fmt.Errorf("failed to open cart storage: %w", err)
	}

	return kv, func() {
		kv.Close()
		logger.Sync()
	}, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	kv, closeFn, err := openBackend(ctx, args[0])
	if err != nil {
		return err
	}
	defer closeFn()

	lines, ok, err := cart.NewKeyedPersistence(kv, cart.KeyPrefix+args[0]).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	out := cmd.OutOrStdout()
	if !ok || len(lines) == 0 {
		fmt.Fprintf(out, "Cart %s is empty.\n", args[0])
		return nil
	}

	var total float64
	count := 0
	for _, line := range lines {
		fmt.Fprintf(out, "%-12s %-40s x%-3d $%8.2f\n", line.ID, line.Name, line.Quantity, line.Subtotal())
		total += line.Subtotal()
		count += line.Quantity
	}
	fmt.Fprintf(out, "\n%d items, total $%.2f\n", count, cart.RoundCents(total))
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	kv, closeFn, err := openBackend(ctx, args[0])
	if err != nil {
		return err
	}
	defer closeFn()

	if err := kv.Delete(ctx, cart.KeyPrefix+args[0]); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cart %s cleared.\n", args[0])
	return nil
}
