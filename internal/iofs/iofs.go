// Package iofs prepares the directories and default files of lpodata.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnsys"
	"github.com/lpoaura/lpodata/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed taxa.yaml
var TaxaYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	if err := gnsys.MakeDir(dir); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless a config file
// exists already.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureTaxaFile writes the default taxa.yaml unless the registry file
// exists already.
func EnsureTaxaFile(homeDir string) error {
	return ensureFile(config.TaxaFilePath(homeDir), TaxaYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
