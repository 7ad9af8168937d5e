package main

import (
	"path/filepath"

	"github.com/go-ini/ini"
)

const configSection = "cleanrebuild"

// Options configures a single generator run.
type Options struct {
	ProjectRoot string
	Output      string
	Target      string
	Verbose     bool
}

// fileConfig is the [cleanrebuild] section of the ini config files.
type fileConfig struct {
	Output string
	Target string
}

// loadConfig reads the project and user config files, both relative to root.
// Missing files are ignored and keys in the user file win.
func loadConfig(root, configFile, userConfigFile string) (fileConfig, error) {
	var sources []interface{}
	for _, name := range []string{configFile, userConfigFile} {
		if name == "" {
			continue
		}
		if !filepath.IsAbs(name) {
			name = filepath.Join(root, name)
		}
		sources = append(sources, name)
	}

	var fc fileConfig
	if len(sources) == 0 {
		return fc, nil
	}

	cfg, err := ini.LooseLoad(sources[0], sources[1:]...)
	if err != nil {
		return fc, err
	}

	section := cfg.Section(configSection)
	fc.Output = section.Key("output").String()
	fc.Target = section.Key("target").String()
	return fc, nil
}

// applyConfig fills options the user did not pass on the command line.
// set holds the names of flags given explicitly.
func (o *Options) applyConfig(fc fileConfig, set map[string]bool) {
	if !set["output"] && fc.Output != "" {
		o.Output = fc.Output
	}
	if !set["target"] && fc.Target != "" {
		o.Target = fc.Target
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
}
