package ednconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tedn/configs"
	"github.com/reusee/tedn/logs"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"edn.cue",
	".edn.cue",
}

// ConfigDirs returns the directories searched for config files, in precedence order.
type ConfigDirs func() []string

func (Module) ConfigDirs() ConfigDirs {
	return func() (ret []string) {
		// working directory
		if dir, err := os.Getwd(); err == nil {
			ret = append(ret, dir)
		}
		// user config dir
		if dir, err := os.UserConfigDir(); err == nil {
			ret = append(ret, dir)
		}
		// system wide dir
		ret = append(ret, "/etc")
		return
	}
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs ConfigDirs,
) configs.Loader {

	var paths []string
	for _, dir := range dirs() {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, Schema)
}
