package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"catalog-backend/pkg/jwt"
)

func newTokenCmd(cli *cliContext) *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Manage API access tokens",
	}

	var (
		subject string
		role    string
		ttl     time.Duration
	)

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Mint an access token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != jwt.RoleWriter && role != jwt.RoleReader {
				return fmt.Errorf("unknown role %q", role)
			}
			if ttl <= 0 {
				ttl = cli.cfg.JWT.TokenExpiry
			}

			signed, err := jwt.NewManager(cli.cfg.JWT.Secret).GenerateAccessToken(subject, role, ttl)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	issue.Flags().StringVar(&subject, "subject", "catalogctl", "token subject")
	issue.Flags().StringVar(&role, "role", jwt.RoleWriter, "writer or reader")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "lifetime (default: JWT_TOKEN_EXPIRY)")

	token.AddCommand(issue)
	return token
}
