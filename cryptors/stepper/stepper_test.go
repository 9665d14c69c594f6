package stepper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/purple/cryptors"
	"github.com/bgallie/purple/cryptors/stepper"
	"github.com/bgallie/purple/cryptors/wiring"
)

func TestNew_Errors(t *testing.T) {
	ragged := [][]int{
		{1, 2, 0},
		{2, 1},
		{0, 1, 2},
	}
	good := [][]int{
		{1, 2, 0},
		{2, 1, 0},
		{0, 1, 2},
	}
	tests := []struct {
		name     string
		logic    [][]int
		position int
	}{
		{"ragged logic", ragged, 0},
		{"ragged logic bad position", ragged, 3},
		{"negative position", good, -1},
		{"position past end", good, 3},
		{"empty logic", [][]int{}, 0},
		{"empty row", [][]int{{}}, 0},
		{"unknown output channel", [][]int{{0, 3}, {1, 0}, {2, 1}}, 0},
		{"negative output channel", [][]int{{0, -1}, {1, 0}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, err := stepper.New("test", tt.logic, tt.position)
			assert.Nil(t, sw)
			var cfgErr *cryptors.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}

	sw, err := stepper.New("test", good, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, sw.Size())
	assert.Equal(t, 3, sw.Channels())
	assert.Equal(t, 2, sw.Position())
	assert.Equal(t, "test", sw.Name())
}

func TestNew_CopiesLogic(t *testing.T) {
	logic := [][]int{{0, 1}, {1, 0}}
	sw, err := stepper.New("copy", logic, 0)
	require.NoError(t, err)
	logic[0][0] = 1

	out, err := sw.Forward(0)
	require.NoError(t, err)
	assert.Equal(t, 0, out)
}

func TestSwitch_Step(t *testing.T) {
	sw, err := stepper.New("sixes", wiring.Sixes(), 0)
	require.NoError(t, err)

	for n := 0; n < 25*2+1; n++ {
		assert.Equal(t, n%25, sw.Position())
		sw.Step()
		assert.Equal(t, (n+1)%25, sw.Position())
	}
}

func TestSwitch_ForwardInverse(t *testing.T) {
	sw, err := stepper.New("sixes", wiring.Sixes(), 0)
	require.NoError(t, err)

	want := []int{1, 0, 2, 4, 3, 5}
	for ch, w := range want {
		out, err := sw.Forward(ch)
		require.NoError(t, err)
		assert.Equal(t, w, out, "forward %d", ch)

		in, err := sw.Inverse(ch)
		require.NoError(t, err)
		assert.Equal(t, w, in, "inverse %d", ch)
	}
}

func TestSwitch_InverseUndoesForward(t *testing.T) {
	for n := 1; n <= 3; n++ {
		sw, err := stepper.New("twenties", wiring.Twenties(n), 0)
		require.NoError(t, err)
		for pos := 0; pos < sw.Size(); pos++ {
			for ch := 0; ch < sw.Channels(); ch++ {
				out, err := sw.Forward(ch)
				require.NoError(t, err)
				in, err := sw.Inverse(out)
				require.NoError(t, err)
				assert.Equal(t, ch, in)
			}
			sw.Step()
		}
	}
}

func TestSwitch_InvalidChannel(t *testing.T) {
	sw, err := stepper.New("sixes", wiring.Sixes(), 0)
	require.NoError(t, err)

	var chErr *cryptors.InvalidChannelError
	_, err = sw.Forward(6)
	require.ErrorAs(t, err, &chErr)
	assert.Equal(t, "sixes", chErr.Switch)
	assert.Equal(t, 6, chErr.Channel)
	assert.Equal(t, 6, chErr.Channels)

	_, err = sw.Inverse(-1)
	require.ErrorAs(t, err, &chErr)
}

func TestSwitch_NotBijective(t *testing.T) {
	// Channels 0 and 1 both route to 1 at position 0; nothing reaches 0.
	logic := [][]int{
		{1, 0},
		{1, 1},
		{2, 2},
	}
	sw, err := stepper.New("broken", logic, 0)
	require.NoError(t, err)
	assert.False(t, sw.Bijective())

	in, err := sw.Inverse(1)
	require.NoError(t, err)
	assert.Equal(t, 1, in)

	var routeErr *cryptors.RoutingError
	_, err = sw.Inverse(0)
	require.ErrorAs(t, err, &routeErr)
	assert.Equal(t, 0, routeErr.Position)
}

func TestSwitch_Reset(t *testing.T) {
	sw, err := stepper.New("twenties #1", wiring.Twenties(1), 7)
	require.NoError(t, err)

	for i := 0; i < 18; i++ {
		sw.Step()
	}
	assert.Equal(t, 0, sw.Position())

	sw.Reset()
	assert.Equal(t, 7, sw.Position())
	assert.Contains(t, sw.String(), `stepper.New("twenties #1"`)
}
