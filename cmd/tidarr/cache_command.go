package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/tidarr/internal/store"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the response cache",
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show cache usage per entry kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, func(db *store.DB) error {
				stats, err := db.CacheStats()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(stats) == 0 {
					fmt.Fprintln(out, "Cache is empty")
					return nil
				}
				fmt.Fprintln(out, renderTable(out, cacheHeaders, cacheRows(stats), cacheAligns))
				return nil
			})
		},
	})

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every cached response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, func(db *store.DB) error {
				if err := db.ClearCache(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
				return nil
			})
		},
	})

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete expired cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, func(db *store.DB) error {
				n, err := db.PurgeExpired()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Purged %d expired entries\n", n)
				return nil
			})
		},
	})

	return cacheCmd
}

func withCache(ctx *commandContext, fn func(*store.DB) error) error {
	db, err := ctx.openCache()
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

var (
	cacheHeaders = []string{"Kind", "Entries", "Expired", "Size"}
	cacheAligns  = []columnAlignment{alignLeft, alignRight, alignRight, alignRight}
)

func cacheRows(stats []store.CacheStat) [][]string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{s.Kind, strconv.Itoa(s.Entries), strconv.Itoa(s.Expired), humanBytes(s.Bytes)})
	}
	return rows
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
