package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"setlist/internal/librarycache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Selection history utilities",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheForgetCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func (c *commandContext) withHistory(fn func(*librarycache.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := librarycache.Open(cfg.HistoryPath())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show remembered title resolutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *librarycache.Store) error {
				selections, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(selections) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "History is empty")
					return nil
				}
				rows := make([][]string, 0, len(selections))
				for _, sel := range selections {
					rows = append(rows, []string{
						sel.TitleKey,
						sel.Path,
						strconv.FormatInt(sel.Uses, 10),
						sel.LastUsedAt.Local().Format(time.DateTime),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Title", "Document", "Uses", "Last used"},
					rows, 2))
				return nil
			})
		},
	}
}

func newCacheForgetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "forget <title>",
		Short: "Drop the remembered resolution for a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *librarycache.Store) error {
				removed, err := store.Forget(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintf(cmd.OutOrStdout(), "Nothing remembered for %q\n", args[0])
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Forgot %q\n", args[0])
				return nil
			})
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all remembered resolutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *librarycache.Store) error {
				count, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d remembered resolution(s)\n", count)
				return nil
			})
		},
	}
}
