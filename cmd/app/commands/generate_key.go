package commands

import (
	"fmt"

	"github.com/allisson/tokenizer/internal/tokenizer/service"
)

// RunGenerateKey generates fresh tokenization key material and prints it as
// environment variable configuration.
//
// The key is 32 cryptographically random bytes encoded with standard base64,
// ready to be used as TOKENIZATION_KEY. Run once per environment; rotating the
// key invalidates every token sealed under the previous one.
func RunGenerateKey(io IOTuple) error {
	key, err := service.GenerateKey()
	if err != nil {
		return fmt.Errorf("failed to generate tokenization key: %w", err)
	}

	fmt.Fprintln(io.Writer, "# Tokenization Key Configuration")
	fmt.Fprintln(io.Writer, "# Copy this environment variable to your .env file or secrets manager")
	fmt.Fprintln(io.Writer, "#")
	fmt.Fprintln(io.Writer, "# WARNING: tokens sealed under a previous key cannot be opened with this one.")
	fmt.Fprintln(io.Writer)
	fmt.Fprintf(io.Writer, "TOKENIZATION_KEY=%q\n", key)

	return nil
}
