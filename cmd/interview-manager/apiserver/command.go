package apiserver

import (
	"github.com/spf13/cobra"

	"github.com/openkcm/interview-manager/internal/business"
	"github.com/openkcm/interview-manager/internal/cmdutils"
)

func Cmd(buildInfo string) *cobra.Command {
	return cmdutils.CobraCommand(
		"api-server",
		"Interview Manager API server",
		"Interview Manager API server hosts the public interview HTTP API and a private gRPC health API",
		buildInfo,
		cmdutils.RunAsService,
		business.Main,
	)
}
