package cryptors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/purple/cryptors"
)

// shift adds n modulo 5 going forwards.
type shift struct {
	n int
}

func (s *shift) Forward(ch int) (int, error) {
	if ch < 0 || ch >= 5 {
		return -1, &cryptors.InvalidChannelError{Switch: "shift", Channel: ch, Channels: 5}
	}
	return (ch + s.n) % 5, nil
}

func (s *shift) Inverse(ch int) (int, error) {
	if ch < 0 || ch >= 5 {
		return -1, &cryptors.InvalidChannelError{Switch: "shift", Channel: ch, Channels: 5}
	}
	return (ch + 5 - s.n) % 5, nil
}

// double maps channel c to 2c modulo 5, which does not commute with shift.
type double struct{}

func (double) Forward(ch int) (int, error) { return ch * 2 % 5, nil }
func (double) Inverse(ch int) (int, error) { return ch * 3 % 5, nil }

func TestChain_RoundTrip(t *testing.T) {
	stages := []cryptors.Crypter{&shift{n: 1}, double{}, &shift{n: 3}}
	for ch := 0; ch < 5; ch++ {
		enc, err := cryptors.EncryptChain(ch, stages...)
		require.NoError(t, err)
		dec, err := cryptors.DecryptChain(enc, stages...)
		require.NoError(t, err)
		assert.Equal(t, ch, dec)
	}
}

func TestChain_Order(t *testing.T) {
	// Inverse of shift 1 then inverse of double: (2-1)*3 = 3.
	enc, err := cryptors.EncryptChain(2, &shift{n: 1}, double{})
	require.NoError(t, err)
	assert.Equal(t, 3, enc)

	// Forward through double first, then shift 1: 3*2+1 = 7 = 2.
	dec, err := cryptors.DecryptChain(3, &shift{n: 1}, double{})
	require.NoError(t, err)
	assert.Equal(t, 2, dec)
}

func TestChain_Error(t *testing.T) {
	_, err := cryptors.EncryptChain(7, &shift{n: 1})
	var ice *cryptors.InvalidChannelError
	require.ErrorAs(t, err, &ice)
	assert.Equal(t, 7, ice.Channel)

	_, err = cryptors.DecryptChain(-1, &shift{n: 1})
	require.ErrorAs(t, err, &ice)
}

func TestChain_NoStages(t *testing.T) {
	assert.Panics(t, func() { _, _ = cryptors.EncryptChain(0) })
	assert.Panics(t, func() { _, _ = cryptors.DecryptChain(0) })
}

func TestErrors_Messages(t *testing.T) {
	assert.Equal(t, "purple: invalid alphabet: too short",
		(&cryptors.ConfigurationError{Field: "alphabet", Reason: "too short"}).Error())
	assert.Equal(t, "purple: invalid configuration: bad",
		(&cryptors.ConfigurationError{Reason: "bad"}).Error())
	assert.Equal(t, `purple: invalid character '1'`,
		(&cryptors.InvalidCharacterError{Char: '1', Offset: -1}).Error())
	assert.Equal(t, `purple: invalid character 'a' at offset 4`,
		(&cryptors.InvalidCharacterError{Char: 'a', Offset: 4}).Error())
	assert.Contains(t, (&cryptors.RoutingError{Switch: "sixes", Channel: 2, Position: 3}).Error(), "no route to channel 2")
}
