package display

import (
	"fmt"
	"os"

	"github.com/backmassage/segmaster/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____             __  __           _
/ ___|  ___  __ _|  \/  | __ _ ___| |_ ___ _ __
\___ \ / _ \/ _`+"`"+` | |\/| |/ _`+"`"+` / __| __/ _ \ '__|
 ___) |  __/ (_| | |  | | (_| \__ \ ||  __/ |
|____/ \___|\__, |_|  |_|\__,_|___/\__\___|_|
            |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
