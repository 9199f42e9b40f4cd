package tui

// Home row plays the naturals, the row above plays the sharps.
var keyBindings = []struct {
	key, note string
}{
	{"a", "Do"}, {"w", "Do#"}, {"s", "Re"}, {"e", "Re#"}, {"d", "Mi"}, {"f", "Fa"},
	{"t", "Fa#"}, {"g", "Sol"}, {"y", "Sol#"}, {"h", "La"}, {"u", "La#"}, {"j", "Si"},
}

var (
	keyToNote = map[string]string{}
	noteToKey = map[string]string{}
)

func init() {
	for _, b := range keyBindings {
		keyToNote[b.key] = b.note
		noteToKey[b.note] = b.key
	}
}
