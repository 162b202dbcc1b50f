package migrate

import (
	"github.com/spf13/cobra"

	"github.com/openkcm/interview-manager/internal/business"
	"github.com/openkcm/interview-manager/internal/cmdutils"
)

func Cmd(buildInfo string) *cobra.Command {
	return cmdutils.CobraCommand(
		"migrate",
		"Interview Manager migrations",
		"Interview Manager migrations create the report archive schema in PostgreSQL.",
		buildInfo,
		cmdutils.RunAsJob,
		business.MigrateMain,
	)
}
