//go:build integration

package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/interview-manager/internal/config"
	"github.com/openkcm/interview-manager/internal/dbtest/valkeytest"
	"github.com/openkcm/interview-manager/internal/interview"
	interviewvalkey "github.com/openkcm/interview-manager/internal/interview/valkey"
	"github.com/openkcm/interview-manager/internal/question"
)

func TestHousekeeper(t *testing.T) {
	const cmdName = "housekeeper"

	ctx := t.Context()

	istat := initInfra(t, cmdName)
	defer istat.Close(ctx)

	istat.PrepareValKey(t)
	istat.Cfg.Interview.Store = config.StoreValKey
	istat.Cfg.Interview.IdleSessionTimeout = time.Hour
	istat.Cfg.Housekeeper.TriggerInterval = time.Second
	istat.PrepareConfig(t)

	client, err := valkeyClient(istat)
	require.NoError(t, err)
	defer client.Close()

	repo := interviewvalkey.NewRepository(client, istat.Cfg.ValKey.Prefix)
	stale := interview.NewSession("stale", 2, question.DifficultyEasy, question.CategoryBehavioral, time.Now().Add(-2*time.Hour))
	fresh := interview.NewSession("fresh", 2, question.DifficultyEasy, question.CategoryBehavioral, time.Now())
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, fresh))

	commandCtx, cancelCommand := context.WithTimeout(ctx, 10*time.Second)
	defer cancelCommand()

	requireKilledOrClean(t, istat.command(t, commandCtx, cmdName).Run())

	_, err = repo.Get(ctx, "stale")
	assert.Error(t, err, "idle session should be deleted")

	_, err = repo.Get(ctx, "fresh")
	assert.NoError(t, err, "active session should be kept")

	keys, err := valkeytest.Keys(ctx, client, istat.Cfg.ValKey.Prefix)
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}
