package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/tidarr/internal/domain"
	"github.com/cesargomez89/tidarr/internal/store"
)

func newRefreshArtistCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-artist",
		Short: "Ask Lidarr to refresh one random library artist",
		Long: "Lists the Lidarr library and queues a RefreshArtist command for one artist " +
			"picked at random. Meant to run from cron so the library slowly picks up new releases.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validationError(ctx.configValue().ValidateLidarr()); err != nil {
				return err
			}
			client := ctx.lidarrClient()
			out := cmd.OutOrStdout()

			artists, err := client.ListArtists(cmd.Context())
			if err != nil {
				return fmt.Errorf("list artists: %w", err)
			}

			var settings *store.SettingsRepo
			last := ""
			if db := ctx.optionalCache(); db != nil {
				defer db.Close()
				settings = store.NewSettingsRepo(db)
				if last, err = settings.Get(store.SettingLastRefreshedArtist); err != nil {
					ctx.logger().Warn("Could not read last refreshed artist", "error", err)
				}
			}

			artist, ok := pickArtist(artists, last, rand.Intn)
			if !ok {
				fmt.Fprintln(out, "Library has no artists")
				return nil
			}

			status, err := client.RefreshArtist(cmd.Context(), artist.ID)
			if err != nil {
				return fmt.Errorf("refresh %s: %w", artist.ArtistName, err)
			}
			if settings != nil {
				if err := settings.Set(store.SettingLastRefreshedArtist, strconv.Itoa(artist.ID)); err != nil {
					ctx.logger().Warn("Could not record refreshed artist", "error", err)
				}
			}

			fmt.Fprintf(out, "Refreshing %s (artist %d): command %d %s\n", artist.ArtistName, artist.ID, status.ID, status.Status)
			return nil
		},
	}
}

// pickArtist chooses a random artist, avoiding the one refreshed last when
// there is any other choice.
func pickArtist(artists []domain.RosterArtist, lastID string, intn func(int) int) (domain.RosterArtist, bool) {
	if len(artists) == 0 {
		return domain.RosterArtist{}, false
	}

	candidates := artists
	if len(artists) > 1 && lastID != "" {
		candidates = make([]domain.RosterArtist, 0, len(artists))
		for _, a := range artists {
			if strconv.Itoa(a.ID) != lastID {
				candidates = append(candidates, a)
			}
		}
		if len(candidates) == 0 {
			candidates = artists
		}
	}
	return candidates[intn(len(candidates))], true
}
