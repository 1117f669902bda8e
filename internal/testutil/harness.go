// Package testutil provides shared helpers for package tests: a thread-safe
// log capture buffer and a harness that builds a full App from in-memory
// HCL files.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/contentgrid/internal/app"
	"github.com/vk/contentgrid/internal/hcl_adapter"
	"github.com/vk/contentgrid/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a startup harness run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// StartApp writes the provided HCL files into a temporary directory layout
// (relative paths may include subdirectories), then constructs an App with
// the given component modules. A startup panic is captured into Err rather
// than failing the test, so error-path startup behavior is assertable.
func StartApp(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()

	configDir := filepath.Join(tmpDir, "config")
	componentsDir := filepath.Join(tmpDir, "components")
	require.NoError(t, os.Mkdir(configDir, 0755))
	require.NoError(t, os.Mkdir(componentsDir, 0755))

	for name, body := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(body), 0644))
	}

	appConfig := &app.Config{
		ConfigPath:     configDir,
		ComponentsPath: componentsDir,
		LogLevel:       "debug",
		LogFormat:      "text",
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl_adapter.NewLoader(), modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		App:       testApp,
	}
}
