package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// AskYesNo writes question to out and reads one line from in.
// Only "y" and "yes" (case-insensitive) count as consent.
func AskYesNo(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprint(out, question+" [y/N]: ")
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		return answer == "y" || answer == "yes"
	}
	return false
}
