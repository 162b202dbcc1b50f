package housekeeper

import (
	"github.com/spf13/cobra"

	"github.com/openkcm/interview-manager/internal/business"
	"github.com/openkcm/interview-manager/internal/cmdutils"
)

func Cmd(buildInfo string) *cobra.Command {
	return cmdutils.CobraCommand(
		"housekeeper",
		"Interview Manager Housekeeping job",
		"Interview Manager Housekeeping job deletes interview sessions that have been idle for too long.",
		buildInfo,
		cmdutils.RunAsService,
		business.HousekeeperMain,
	)
}
