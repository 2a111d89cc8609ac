package avremote

// Command is one decoded 16-bit frame.
type Command uint16

// Codes sent by the 7-button remote, MSB first on the wire.
//
//	ON-OFF  1110001001000000
//	UP      1110001001001000
//	DOWN    1110001001010000
//	MUTE    1110001001001100
//	LEFT    1110001001010100
//	RIGHT   1110001001000100
//	AV      1110001001011100
const (
	OnOff Command = 57920
	Up    Command = 57928
	Down  Command = 57936
	Mute  Command = 57932
	Left  Command = 57940
	Right Command = 57924
	AV    Command = 57948
)

// Unknown is the name given to codes that are not in the keymap.
const Unknown = "unknown"

// Key names a single command.
type Key struct {
	Command Command
	Name    string
}

// Keymap is a fixed table of known commands. Lookups are linear; keymaps
// are a handful of entries.
type Keymap []Key

// DefaultKeymap lists the buttons of the stock remote.
var DefaultKeymap = Keymap{
	{OnOff, "ON-OFF"},
	{Up, "UP"},
	{Down, "DOWN"},
	{Mute, "MUTE"},
	{Left, "LEFT"},
	{Right, "RIGHT"},
	{AV, "AV"},
}

// Lookup returns the name of c, if it is known.
func (km Keymap) Lookup(c Command) (string, bool) {
	for i := range km {
		if km[i].Command == c {
			return km[i].Name, true
		}
	}
	return "", false
}

// Find is the reverse of Lookup.
func (km Keymap) Find(name string) (Command, bool) {
	for i := range km {
		if km[i].Name == name {
			return km[i].Command, true
		}
	}
	return 0, false
}

// CommandToString returns the DefaultKeymap name of c, or Unknown.
// It never allocates and may be called from interrupt context.
func CommandToString(c Command) string {
	if name, ok := DefaultKeymap.Lookup(c); ok {
		return name
	}
	return Unknown
}

// Name returns the DefaultKeymap name of c.
func (c Command) Name() (string, bool) {
	return DefaultKeymap.Lookup(c)
}

func (c Command) String() string {
	return CommandToString(c)
}
