package gamefile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonis/epiunfold/game"
	"github.com/arvonis/epiunfold/gamefile"
)

const coinFlipGame = `Actions
flip
wait

Locations
0 = start
1 = heads
2 = tails

Initial location
game starts at 0

Observations
0|1|2
0|1,2

Transitions
0 0,1 1
0 0,1 2
`

func TestParseCoinFlipGame(t *testing.T) {
	g, err := gamefile.Parse(strings.NewReader(coinFlipGame))
	require.NoError(t, err)
	assert.Len(t, g.States(), 3)
	assert.Equal(t, "start", g.StateName(0))
	assert.Equal(t, "heads", g.StateName(1))
	assert.Equal(t, "tails", g.StateName(2))
	assert.Equal(t, 0, g.InitialState())
	assert.Equal(t, 2, g.PlayerCount())
	assert.False(t, g.AreDistinguishable(1, 1, 2), "player 1 should not distinguish heads from tails")
	assert.True(t, g.AreDistinguishable(0, 1, 2), "player 0 should distinguish heads from tails")

	next, err := g.GetMove(game.JointAction{"flip", "wait"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, next)
}

func TestParseRejectsTruncatedFile(t *testing.T) {
	_, err := gamefile.Parse(strings.NewReader("Actions\nflip\n"))
	assert.Error(t, err, "expected an error for a file truncated before the locations section")
}

func TestParseRejectsNonCoveringLocationIndices(t *testing.T) {
	bad := `Actions
flip

Locations
0 = start
2 = tails

Initial location
0

Observations
0|2

Transitions
`
	_, err := gamefile.Parse(strings.NewReader(bad))
	if err == nil {
		t.Fatalf("expected an error for non-covering location indices")
	}
}

func TestParseRejectsDuplicateLocationIndex(t *testing.T) {
	bad := `Actions
flip

Locations
0 = start
0 = also_start

Initial location
0

Observations
0

Transitions
`
	_, err := gamefile.Parse(strings.NewReader(bad))
	if err == nil {
		t.Fatalf("expected an error for a duplicate location index")
	}
}
