package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-petr/coa-seeder/pkg/configpkg"
	"github.com/go-petr/coa-seeder/pkg/tokenpkg"
)

func newTokenCommand(configPath *string) *cobra.Command {
	var (
		subject  string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configpkg.Load(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if duration == 0 {
				duration = config.AccessTokenDuration
			}

			maker, err := tokenpkg.NewMaker(config.TokenType, config.TokenSymmetricKey)
			if err != nil {
				return fmt.Errorf("creating token maker: %w", err)
			}

			token, payload, err := maker.CreateToken(subject, duration)
			if err != nil {
				return fmt.Errorf("creating token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", payload.ExpiredAt.Format(time.RFC3339))

			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "token subject (required)")
	_ = cmd.MarkFlagRequired("subject")
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime, the configured access token duration when unset")

	return cmd
}
