package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/fine-structures/cubemesh/config"
	"github.com/fine-structures/cubemesh/pymesh"
	"github.com/plan-systems/klog"
)

func main() {
	configPath := flag.String("config", "", "config file (default: search $"+config.EnvConfigPath+", ./"+config.ConfigFileName+", ~/.config)")
	verbosity := flag.Int("v", -1, "klog verbosity (overrides the config)")
	writeConfig := flag.Bool("write-config", false, "write the effective config to the user config path and exit")
	flag.Parse()

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if *configPath != "" {
		cfg, path, err = config.LoadFromPath(*configPath)
	} else {
		cfg, path, err = config.Load()
	}

	level := logLevel(cfg, *verbosity)

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", strconv.Itoa(level))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          useColor(cfg),
	})

	if err != nil {
		klog.Errorf("config %q: %v", path, err)
		klog.Flush()
		os.Exit(1)
	}
	if path != "" {
		klog.V(1).Infof("loaded config %q", path)
	}
	if *writeConfig {
		out := config.UserConfigPath()
		if err = cfg.Save(out); err != nil {
			klog.Errorf("write config %q: %v", out, err)
			klog.Flush()
			os.Exit(1)
		}
		fmt.Println(out)
		klog.Flush()
		return
	}
	pymesh.SessionConfig = cfg

	pathname := flag.Arg(0)
	go_gpython(pathname, cfg.REPL.Startup)

	klog.Flush()
}

func logLevel(cfg *config.Config, flagLevel int) int {
	switch {
	case flagLevel >= 0:
		return flagLevel
	case cfg != nil:
		return cfg.Log.Verbosity
	}
	return 0
}

func useColor(cfg *config.Config) bool {
	if cfg == nil || cfg.Log.Color == nil {
		return true
	}
	return *cfg.Log.Color
}
