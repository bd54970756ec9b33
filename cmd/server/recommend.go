package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/PEEKING-web/steam-tracker/internal/app/recommend"
	"github.com/PEEKING-web/steam-tracker/internal/auth"
	"github.com/PEEKING-web/steam-tracker/internal/logging"
	"github.com/PEEKING-web/steam-tracker/internal/server"
)

type recommendFlags struct {
	steamID string
	day     string
	mood    string
	time    string
}

func newRecommendCmd() *cobra.Command {
	var f recommendFlags
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print recommendations for a Steam user as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.steamID, "steam-id", "", "64-bit Steam id")
	cmd.Flags().StringVar(&f.day, "day", "", "how the day went, e.g. stressful")
	cmd.Flags().StringVar(&f.mood, "mood", "", "current mood, e.g. chill")
	cmd.Flags().StringVar(&f.time, "time", "", "time available, e.g. 30 minutes")
	_ = cmd.MarkFlagRequired("steam-id")
	return cmd
}

func runRecommend(cmd *cobra.Command, f recommendFlags) error {
	if _, ok := auth.SteamIDFromClaimedID("https://steamcommunity.com/openid/id/" + f.steamID); !ok {
		return errors.New("--steam-id must be a 17 digit Steam id")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Logs go to stderr so stdout stays valid JSON.
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
		Output:  os.Stderr,
	})

	svc := server.NewRecommendService(cfg, logger, nil)
	res, err := svc.RecommendForUser(commandContext(cmd), f.steamID, recommend.SituationalContext{
		DayType:       f.day,
		Mood:          f.mood,
		TimeAvailable: f.time,
	})
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), res)
}

func writeResult(w io.Writer, res recommend.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
