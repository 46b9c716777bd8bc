package dialogue

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// WaitForEnter prints prompt and blocks until a key is pressed on stdin. The
// terminal is put in raw mode for the read so no line buffering applies. It
// returns immediately if stdin is not a terminal.
func WaitForEnter(prompt string) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	fmt.Print(prompt)
	defer fmt.Println()

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	input := make([]byte, 1)
	_, err = os.Stdin.Read(input)
	return err
}
