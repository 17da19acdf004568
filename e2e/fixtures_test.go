//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory used as $HOME for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir, err := os.MkdirTemp("", "combobox-test-*")
	if err != nil {
		return "", err
	}

	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFile writes a file into the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// StartDefault creates a workspace and starts the app with the built-in catalog
func (tf *TUITestFramework) StartDefault(args ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	return tf.StartApp(args...)
}
