// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/tokenvault/vaultd/fault"
)

const configWatcherLoggerPrefix = "config-watcher"

// ConfigWatcher - watch the configuration file for runtime changes
type ConfigWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newConfigWatcher(targetFile string) (*ConfigWatcher, error) {
	log := logger.New(configWatcherLoggerPrefix)

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ConfigurationFileNotFound
	}

	return &ConfigWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Start - begin delivering change and remove events
func (w *ConfigWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			event := <-w.watcher.Events
			w.log.Infof("file event: %v", event)

			if isRemoveEvent(event) {
				w.log.Errorf("file %s removed, stop", w.filePath)
				w.sendEvent(w.remove, "remove")
				return
			}

			if path.Base(event.Name) != path.Base(filepath.Clean(w.filePath)) {
				w.log.Infof("file %s not match, discard event", w.filePath)
				continue
			}

			if isChangeEvent(event) {
				w.sendEvent(w.change, "change")
			}
		}
	}()

	return nil
}

// ChangeChannel - signalled when the file is rewritten
func (w *ConfigWatcher) ChangeChannel() <-chan struct{} {
	return w.change
}

// RemoveChannel - signalled once when the file disappears
func (w *ConfigWatcher) RemoveChannel() <-chan struct{} {
	return w.remove
}

func (w *ConfigWatcher) sendEvent(ch chan struct{}, name string) {
	if len(ch) == cap(ch) {
		w.log.Infof("event channel %s full, discard event", name)
		return
	}
	ch <- struct{}{}
}

func isRemoveEvent(event fsnotify.Event) bool {
	return event.Name == "" || event.Op&fsnotify.Remove == fsnotify.Remove
}

func isChangeEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
