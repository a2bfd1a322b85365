package cmdutil

import (
	"errors"
	"fmt"
	"os"
	"strings"

	oerrors "github.com/opmodel/bundler/internal/errors"
	"github.com/opmodel/bundler/internal/output"
)

// PrintError reports err. A DetailError is printed as its structured block
// on stderr; anything else goes through the logger.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(msg)
		fmt.Fprintln(os.Stderr, strings.TrimRight(detail.Error(), "\n"))
		return
	}
	output.Error(msg, "error", err)
}

// InvalidFormatError reports an unknown --output value.
func InvalidFormatError(format string) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("invalid output format %q", format), "", "output",
		"Valid formats: "+strings.Join(output.ValidFormats(), ", "))
}
