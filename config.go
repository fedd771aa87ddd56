package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind           string
	port           int
	prefix         string
	profile        bool
	playerTimeout  time.Duration
	sessionTimeout time.Duration
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool

	startingCoins    int
	roundAward       int
	lowCoinThreshold int
	bidTimer         time.Duration
	tieRestartDelay  time.Duration
	questionDelay    time.Duration
	wrongGuessDelay  time.Duration
	shortGuessDelay  time.Duration
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.startingCoins < 1 {
		return fmt.Errorf("invalid starting coin count (must be positive): %d", c.startingCoins)
	}
	if c.roundAward < 0 {
		return fmt.Errorf("invalid round award (must be non-negative): %d", c.roundAward)
	}
	if c.lowCoinThreshold < 0 {
		return fmt.Errorf("invalid low-coin threshold (must be non-negative): %d", c.lowCoinThreshold)
	}
	if c.bidTimer <= 0 {
		return fmt.Errorf("invalid bid timer (must be positive): %s", c.bidTimer)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("ASKTRUTH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "asktruth",
		Short:         "Authoritative server for the two-player card game \"ask or truth\".",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: ASKTRUTH_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: ASKTRUTH_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: ASKTRUTH_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: ASKTRUTH_PROFILE)")
	fs.DurationVar(&cfg.playerTimeout, "player-timeout", 10*time.Minute, "time before disconnected players lose their seat (env: ASKTRUTH_PLAYER_TIMEOUT)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle game sessions are ended (env: ASKTRUTH_SESSION_TIMEOUT)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: ASKTRUTH_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: ASKTRUTH_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: ASKTRUTH_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: ASKTRUTH_VERSION)")

	fs.IntVar(&cfg.startingCoins, "starting-coins", 10, "coin balance each player starts with (env: ASKTRUTH_STARTING_COINS)")
	fs.IntVar(&cfg.roundAward, "round-award", 2, "coins granted to every player after each bidding round (env: ASKTRUTH_ROUND_AWARD)")
	fs.IntVar(&cfg.lowCoinThreshold, "low-coin-threshold", 5, "balance at or below which only a boolean is disclosed to the opponent (env: ASKTRUTH_LOW_COIN_THRESHOLD)")
	fs.DurationVar(&cfg.bidTimer, "bid-timer", 10*time.Second, "countdown duration sent with each bidding round (env: ASKTRUTH_BID_TIMER)")
	fs.DurationVar(&cfg.tieRestartDelay, "tie-restart-delay", 3*time.Second, "pause before reopening bidding after a tie or cancelled round (env: ASKTRUTH_TIE_RESTART_DELAY)")
	fs.DurationVar(&cfg.questionDelay, "question-delay", 4*time.Second, "pause after an answered question before bidding reopens (env: ASKTRUTH_QUESTION_DELAY)")
	fs.DurationVar(&cfg.wrongGuessDelay, "wrong-guess-delay", 5*time.Second, "pause after an incorrect truth guess before bidding reopens (env: ASKTRUTH_WRONG_GUESS_DELAY)")
	fs.DurationVar(&cfg.shortGuessDelay, "short-guess-delay", 3*time.Second, "pause after a malformed truth guess before bidding reopens (env: ASKTRUTH_SHORT_GUESS_DELAY)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("asktruth v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
