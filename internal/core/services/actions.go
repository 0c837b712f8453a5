package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/evertools/esq-cli/internal/core/domain"
	"github.com/evertools/esq-cli/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on search results.
type ResultActionService struct{}

// NewResultActionService creates a new result action service.
func NewResultActionService() *ResultActionService {
	return &ResultActionService{}
}

// CopyPath copies the result's filesystem path to the system clipboard.
func (s *ResultActionService) CopyPath(_ context.Context, record domain.Record) error {
	path := record.FullPath()
	if path == "" {
		return fmt.Errorf("record has no path column")
	}
	return copyToClipboard(path)
}

// OpenResult opens the result's path in the default application.
func (s *ResultActionService) OpenResult(_ context.Context, record domain.Record) error {
	path := record.FullPath()
	if path == "" {
		return fmt.Errorf("record has no path column")
	}
	return openPath(path)
}

// copyToClipboard copies text to the system clipboard using OS-specific commands.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("pbcopy")
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard utility found (install xclip or xsel)")
		}
	case osWindows:
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// openPath opens a filesystem path with the platform's default handler.
func openPath(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", path)
	case osLinux:
		cmd = exec.Command("xdg-open", path)
	case osWindows:
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Run()
}
