package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/tidarr/internal/dedup"
	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/engine"
	"github.com/cesargomez89/tidarr/internal/ids"
	"github.com/cesargomez89/tidarr/internal/session"
	"github.com/cesargomez89/tidarr/internal/translate"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var albums bool

	cmd := &cobra.Command{
		Use:   "search <artist name>",
		Short: "Search the catalog the way Lidarr would",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			db := ctx.optionalCache()
			if db != nil {
				defer db.Close()
			}
			sess, err := session.Open(cfg.SessionFile)
			if err != nil {
				return err
			}
			defer sess.Close()

			eng := engine.New(ctx.provider(db, sess), ctx.lidarrClient(), engine.Options{
				Dedup:  dedup.Options{Disabled: cfg.DisableDedup},
				Logger: ctx.logger(),
			})

			// The engine expects terms encoded the way the manager sends them.
			query := url.PathEscape(strings.Join(args, " "))
			out := cmd.OutOrStdout()

			if albums {
				found, err := eng.ArtistAlbums(cmd.Context(), query)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, renderTable(out, albumHeaders, albumRows(found), albumAligns))
				return nil
			}

			artists := eng.Search(cmd.Context(), query)
			fmt.Fprintln(out, renderTable(out, artistHeaders, artistRows(artists), nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&albums, "albums", false, "List the artist's albums instead of matching artists")
	return cmd
}

var (
	artistHeaders = []string{"ID", "Name", "Sort Name"}
	albumHeaders  = []string{"ID", "Title", "Type", "Released", "Tracks", "Popularity"}
	albumAligns   = []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight}
)

func artistRows(artists []domain.Artist) [][]string {
	rows := make([][]string, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, []string{a.ID, a.ArtistName, a.SortName})
	}
	return rows
}

func albumRows(albums []domain.ForeignAlbum) [][]string {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		rows = append(rows, []string{
			ids.Encode(a.ID, ids.Album),
			a.Title,
			translate.DisplayType(a.Type),
			translate.ReleaseDate(a.ReleaseDate),
			strconv.Itoa(a.NumTracks),
			strconv.Itoa(a.Popularity),
		})
	}
	return rows
}
