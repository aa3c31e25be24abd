//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Installs the application.
func Install() error {
	version, err := sh.Output("git", "describe", "--always", "--long", "--dirty")
	if err != nil {
		return err
	}
	return sh.Run("go", "install", "-ldflags", "-X main.version="+version)
}

// Creates an executable for the given platform. Possible platforms are "linux-amd64", "linux-arm64" and "darwin-arm64".
func Build(platform string) error {
	envMap, err := env(platform)
	if err != nil {
		return err
	}
	version, err := sh.Output("git", "describe", "--always", "--long", "--dirty")
	if err != nil {
		return err
	}
	return sh.RunWith(envMap, "go", "build", "-ldflags", "-X main.version="+version, "-o", "wanderlist")
}

// Runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

func env(platform string) (map[string]string, error) {
	switch platform {
	case "linux-amd64":
		return map[string]string{"GOOS": "linux", "GOARCH": "amd64"}, nil
	case "linux-arm64":
		return map[string]string{"GOOS": "linux", "GOARCH": "arm64"}, nil
	case "darwin-arm64":
		return map[string]string{"GOOS": "darwin", "GOARCH": "arm64"}, nil
	}

	return nil, fmt.Errorf("Platform '%s' not supported", platform)
}
