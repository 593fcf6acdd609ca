package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zaplanuj/terminarz/calendar"
	"github.com/zaplanuj/terminarz/internal/profile"
	"github.com/zaplanuj/terminarz/internal/version"
	"github.com/zaplanuj/terminarz/plugin/eventparse"
	"github.com/zaplanuj/terminarz/server"
	"github.com/zaplanuj/terminarz/store"
	"github.com/zaplanuj/terminarz/store/db"
)

const greetingBanner = `terminarz %s, czas start!`

var rootCmd = &cobra.Command{
	Use:   "terminarz",
	Short: "Channel event scheduler with a Polish natural-language front end",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		instanceProfile := &profile.Profile{
			Mode:           viper.GetString("mode"),
			Addr:           viper.GetString("addr"),
			Port:           viper.GetInt("port"),
			Data:           viper.GetString("data"),
			Driver:         viper.GetString("driver"),
			DSN:            viper.GetString("dsn"),
			ChannelHandle:  viper.GetString("channel"),
			Timezone:       viper.GetString("timezone"),
			WebhookURL:     viper.GetString("webhook-url"),
			NotifyInterval: viper.GetDuration("notify-interval"),
			Version:        version.Version,
		}
		if err := instanceProfile.Validate(); err != nil {
			return fmt.Errorf("invalid profile: %w", err)
		}

		location, err := instanceProfile.Location()
		if err != nil {
			return err
		}

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			return fmt.Errorf("failed to create db driver: %w", err)
		}
		storeInstance := store.New(dbDriver, instanceProfile)
		defer storeInstance.Close()

		if err := storeInstance.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		parser := eventparse.NewPolishParser(eventparse.ClockFunc(func() time.Time {
			return time.Now().In(location)
		}))
		calendarService := calendar.NewService(storeInstance, parser, eventparse.ClockFunc(func() time.Time {
			return time.Now().In(location)
		}), instanceProfile.ChannelHandle)

		slog.Info(fmt.Sprintf(greetingBanner, instanceProfile.Version),
			"mode", instanceProfile.Mode, "channel", instanceProfile.ChannelHandle)
		return server.NewServer(instanceProfile, storeInstance, calendarService).Start(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().String("mode", "dev", `mode of the server, can be "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "binding address for the server")
	rootCmd.PersistentFlags().Int("port", 8231, "binding port for the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", `database driver, "sqlite" or "postgres"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name")
	rootCmd.PersistentFlags().String("channel", "general", "handle of the channel this instance serves")
	rootCmd.PersistentFlags().String("timezone", "Europe/Warsaw", "IANA timezone relative phrases resolve against")
	rootCmd.PersistentFlags().String("webhook-url", "", "channel adapter endpoint notifications are posted to")
	rootCmd.PersistentFlags().Duration("notify-interval", 30*time.Second, "how often due notifications are checked")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("terminarz")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
}
