package notify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/otpgate/otpgate/internal/pkg/clock"
)

// File appends codes to a local file. The recipient is the file path; parent
// directories are created on demand. Useful for local development and tests.
type File struct {
	clock clock.Clocker
}

func NewFile(clk clock.Clocker) *File {
	return &File{clock: clk}
}

func (f *File) SendCode(_ context.Context, recipient, code string) error {
	if dir := filepath.Dir(recipient); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create otp file dir: %w", err)
		}
	}

	// #nosec G304 -- the path is the stored recipient address.
	file, err := os.OpenFile(recipient, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open otp file: %w", err)
	}
	defer file.Close()

	line := f.clock.Now().Format(time.RFC3339) + " - OTP: " + code + "\n"
	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("append otp file: %w", err)
	}

	return nil
}
