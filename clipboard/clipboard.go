package clipboard

import cb "github.com/atotto/clipboard"

func Read() (string, error) {
	return cb.ReadAll()
}

func Copy(text string) error {
	return cb.WriteAll(text)
}

// Unsupported reports whether no clipboard tool was found (xclip, xsel,
// wl-clipboard on Linux).
func Unsupported() bool {
	return cb.Unsupported
}
