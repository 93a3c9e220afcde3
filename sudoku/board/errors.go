package board

import (
	"fmt"
	"os"
	"strings"
)

// boardStateError and fatalError report unrecoverable board-construction
// failures (a conflicting given, a malformed input grid) by printing to
// stderr and exiting. This is a deliberately different failure mode from
// the dlx package's wrapped sentinel errors: a malformed input grid or an
// inconsistent board ends the process at the point of detection instead of
// being returned to the caller for handling.
func boardStateError(msg string) {
	fatalError("board", msg)
}

func fatalError(prefix string, msgs ...string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, strings.Join(msgs, ": "))
	os.Exit(1)
}
