package platform

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-vault-core/internal/logger"
)

type systemClipboard struct {
	logger *logger.Logger
}

func NewSystemClipboard(log *logger.Logger) Clipboard {
	return &systemClipboard{logger: log}
}

func (c *systemClipboard) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		c.logger.Err(err).Str("func", "Copy").Msg("error writing to clipboard")
		return fmt.Errorf("error writing to clipboard: %w", err)
	}
	return nil
}

func (c *systemClipboard) CopyExpiring(text string, clearAfter time.Duration) error {
	if err := c.Copy(text); err != nil {
		return err
	}

	time.AfterFunc(clearAfter, func() {
		// Only clear if our value is still on the clipboard; the user may
		// have copied something else since.
		current, err := clipboard.ReadAll()
		if err != nil || current != text {
			return
		}
		if err = clipboard.WriteAll(""); err != nil {
			c.logger.Err(err).Str("func", "CopyExpiring").Msg("error clearing clipboard")
		}
	})

	return nil
}
