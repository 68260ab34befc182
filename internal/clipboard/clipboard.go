// Package clipboard abstracts the system clipboard behind a narrow
// interface so the pipeline is testable without one.
package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// Writer places text on a clipboard.
type Writer interface {
	Write(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// Write copies text to the system clipboard.
func (System) Write(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
