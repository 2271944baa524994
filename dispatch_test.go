package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackfern/console/core"
)

func TestActionsTable(t *testing.T) {
	cases := []struct {
		kind  core.Kind
		print bool
		log   bool
	}{
		{core.Print, true, false},
		{core.Log, false, true},
		{core.LogAndPrint, true, true},
		{core.StyledPrint, true, false},
		{core.LogAndStyledPrint, true, true},
		{core.DebugPrint, true, false},
		{core.DebugLog, false, true},
		{core.DebugLogAndPrint, true, true},
	}
	assert.Len(t, actions, len(cases), "every kind needs a dispatch entry")
	for _, tc := range cases {
		assert.Equal(t, tc.print, actions[tc.kind].print, "%s print flag", tc.kind)
		assert.Equal(t, tc.log, actions[tc.kind].log, "%s log flag", tc.kind)
	}
}

func TestDispatch_UnknownKindIsIgnored(t *testing.T) {
	var out bytes.Buffer
	c := New(Config{Out: &out})

	c.dispatch(&core.Message{Text: "mystery", Kind: core.Kind(99)})

	assert.Zero(t, out.Len())
	assert.Equal(t, uint64(1), c.Stats().Processed)
}

func TestDispatch_LogWithoutSinkIsSkippedSilently(t *testing.T) {
	var out bytes.Buffer
	c := New(Config{Out: &out})

	c.dispatch(&core.Message{Text: "lost", Kind: core.Log})
	c.dispatch(&core.Message{Text: "shown", Kind: core.LogAndPrint})

	snap := c.Stats()
	assert.Equal(t, uint64(2), snap.SkippedLogs)
	assert.Equal(t, uint64(1), snap.Printed)
	assert.Equal(t, "shown\n", out.String())
}
