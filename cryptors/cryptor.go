// cryptor
package cryptors

const (
	// SwitchPositions is the number of wiper positions on every stepping switch.
	SwitchPositions = 25
	// SixesChannels is the number of channels (vowel class) on the sixes switch.
	SixesChannels = 6
	// TwentiesChannels is the number of channels (consonant class) on each
	// twenties switch.
	TwentiesChannels = 20
	// AlphabetSize is the number of letters wired to the plugboard.  The sixes
	// occupy channels 0-5 and the twenties 6-25.
	AlphabetSize = SixesChannels + TwentiesChannels
	// NumberTwenties is the number of chained twenties switches.
	NumberTwenties = 3
)

// Crypter is a single substitution stage.  Forward feeds a channel through the
// stage in the direction used for decryption, Inverse feeds it backwards.
type Crypter interface {
	Forward(int) (int, error)
	Inverse(int) (int, error)
}

func Encrypt(ecm Crypter, channel int) (int, error) {
	return ecm.Inverse(channel)
}

func Decrypt(ecm Crypter, channel int) (int, error) {
	return ecm.Forward(channel)
}

// EncryptChain feeds channel backwards through the stages in the order given.
func EncryptChain(channel int, ecms ...Crypter) (int, error) {
	if ecms == nil {
		panic("you must give at least one encryption device!")
	}

	var err error
	for idx := 0; idx < len(ecms); idx++ {
		channel, err = Encrypt(ecms[idx], channel)
		if err != nil {
			return -1, err
		}
	}

	return channel, nil
}

// DecryptChain undoes EncryptChain: it feeds channel forwards through the
// stages starting with the last one.
func DecryptChain(channel int, ecms ...Crypter) (int, error) {
	if ecms == nil {
		panic("you must give at least one decryption device!")
	}

	var err error
	for idx := len(ecms) - 1; idx >= 0; idx-- {
		channel, err = Decrypt(ecms[idx], channel)
		if err != nil {
			return -1, err
		}
	}

	return channel, nil
}
