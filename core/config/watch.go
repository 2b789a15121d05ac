// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements file system watching for configuration files to
//              support hot-reloading and automatic configuration updates.
// Version: v0.1.1
// Created: 2025-11-11
// Modified: 2025-11-17
//
// Change History:
// - 2025-11-11 v0.1.0: Initial polling-based implementation
// - 2025-11-17 v0.1.1: Switched to fsnotify event-driven watching

package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	slerror "github.com/candela-render/scenelang/core/error"
	"github.com/candela-render/scenelang/utils/stringx"
)

// startWatching starts monitoring the configuration file for changes
func (c *Config) startWatching() error {
	if stringx.IsBlank(c.filePath) {
		return slerror.New("file path required for watching").
			WithCode(slerror.CodeValidationFailed).
			WithOperation("config.startWatching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return slerror.Wrap(err, "failed to create file watcher").
			WithCode(slerror.CodeConfigError).
			WithOperation("config.startWatching").
			WithDetail("filePath", c.filePath)
	}
	defer watcher.Close()

	// Watch the containing directory rather than the file itself: editors
	// typically save via rename, which invalidates a direct file watch.
	dir := filepath.Dir(c.filePath)
	if err := watcher.Add(dir); err != nil {
		return slerror.Wrap(err, "failed to watch config directory").
			WithCode(slerror.CodeConfigError).
			WithOperation("config.startWatching").
			WithDetail("directory", dir)
	}

	target := filepath.Clean(c.filePath)

	c.mu.RLock()
	done := c.watchDone
	c.mu.RUnlock()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			// A single save can fire several events; the modification
			// time check collapses them into one reload.
			fileInfo, statErr := os.Stat(target)
			if statErr != nil {
				// File might have been deleted or moved
				continue
			}

			c.mu.RLock()
			lastModified := c.lastModified
			c.mu.RUnlock()

			if !fileInfo.ModTime().After(lastModified) {
				continue
			}

			if err := c.reload(); err != nil {
				// A partial write may parse on the next event
				continue
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

		case <-done:
			return nil
		}
	}
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	// Read and parse the updated file
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return slerror.Wrap(err, "failed to read config file during reload").
			WithCode(slerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return slerror.Wrap(err, "failed to parse config file during reload").
			WithCode(slerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	// Create a copy of the old configuration for comparison
	c.mu.Lock()
	oldConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}

	// Update the configuration
	c.data = newData
	fileInfo, _ := os.Stat(c.filePath)
	if fileInfo != nil {
		c.lastModified = fileInfo.ModTime()
	}

	// Get watchers (copy to avoid holding lock during callbacks)
	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)
	c.mu.Unlock()

	// Notify all watchers
	newConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}

	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.watching {
		return
	}
	c.watching = false

	if c.watchDone != nil {
		close(c.watchDone)
		c.watchDone = nil
	}
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
