package jobs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusLifecycle(t *testing.T) {
	var status Status

	snap := status.Poll()
	require.False(t, snap.Running)

	require.NoError(t, status.Start())
	require.ErrorIs(t, status.Start(), ErrAlreadyRunning)

	status.SetStep("cdn_sync", "fetching items")
	status.SetCount("items", 120)
	status.AddError(fmt.Errorf("item 42 malformed"))

	snap = status.Poll()
	require.True(t, snap.Running)
	require.Equal(t, "cdn_sync", snap.Step)
	require.Equal(t, 120, snap.Counts["items"])
	require.Len(t, snap.Errors, 1)

	// mutating the polled copy must not leak back
	snap.Counts["items"] = 0
	require.Equal(t, 120, status.Poll().Counts["items"])

	status.Finish("completed", "done")
	snap = status.Poll()
	require.False(t, snap.Running)
	require.Equal(t, "completed", snap.Step)
	require.False(t, snap.EndedAt.IsZero())

	// a finished status can be restarted
	require.NoError(t, status.Start())
}
