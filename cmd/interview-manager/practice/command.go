package practice

import (
	"os"

	"github.com/google/uuid"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/openkcm/interview-manager/internal/openapi"
	"github.com/openkcm/interview-manager/internal/practice"
)

type options struct {
	server     string
	sessionID  string
	rounds     int
	difficulty string
	category   string
}

func Cmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Practice an interview in the terminal",
		Long:  "Practice starts an interview session on a running api-server and walks through it in an interactive terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.server, "server", "http://localhost:8080", "base URL of the interview API")
	cmd.Flags().StringVar(&opts.sessionID, "session", "", "session id, a random one is used when empty")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 0, "number of rounds, the server default is used when 0")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "question difficulty: easy, medium or hard")
	cmd.Flags().StringVar(&opts.category, "category", "", "question category: behavioral or technical")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if !practice.IsTerminal(os.Stdin) {
		return oops.In("practice").Wrap(practice.ErrNotTerminal)
	}

	client, err := practice.NewClient(opts.server)
	if err != nil {
		return oops.In("practice").Wrapf(err, "creating api client")
	}

	req := openapi.StartRequest{SessionId: opts.sessionID}
	if req.SessionId == "" {
		req.SessionId = uuid.NewString()
	}
	if opts.difficulty != "" {
		req.Difficulty = &opts.difficulty
	}
	if opts.category != "" {
		req.Category = &opts.category
	}
	if opts.rounds > 0 {
		req.Rounds = &opts.rounds
	}

	return practice.Run(cmd.Context(), client, req, cmd.InOrStdin(), cmd.OutOrStdout())
}
