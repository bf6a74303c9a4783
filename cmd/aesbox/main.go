// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/op/go-logging.v1"

	"github.com/aesbox/aesbox/pkg/conf"
	"github.com/aesbox/aesbox/pkg/logtarget"
	"github.com/aesbox/aesbox/pkg/passgen"
	"github.com/aesbox/aesbox/pkg/randsource"
	"github.com/aesbox/aesbox/pkg/replacefile"
)

var logger = logging.MustGetLogger("aesbox")

func main() {
	flag.Parse()
	if Args.ShowHelp == true {
		Usage()
		return
	}

	backend := logging.NewLogBackend(&logtarget.Target, "", 0)
	format := logging.MustStringFormatter("%{time:15:04:05.000} %{level:.4s} %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	if Args.Verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.NOTICE, "")
	}
	logging.SetBackend(leveled)

	fs := afero.NewOsFs()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatalf("Unable to read configuration: %v", err)
	}

	logPath := Args.LogPath
	if logPath == "" {
		logPath = cfg.StringValue("LogPath")
	}
	if logPath != "" {
		if err := logtarget.Target.OpenFile(logPath); err != nil {
			logger.Fatalf("Unable to open log file: %v", err)
		}
	}

	if Args.GenPass > 0 {
		password, err := passgen.Generate(randsource.Crypto, Args.GenPass, passgen.All)
		if err != nil {
			logger.Fatalf("Unable to generate password: %v", err)
		}
		fmt.Println(password)
		return
	}

	fname := flag.Arg(0)
	fromStdin := fname == "" || fname == "-"

	if Args.InPlace && fromStdin {
		logger.Fatalf("-inplace needs a file argument")
	}
	if Args.InPlace && Args.Output != "" {
		logger.Fatalf("-inplace and -o are mutually exclusive")
	}

	var input []byte
	if fromStdin {
		input, err = ioutil.ReadAll(os.Stdin)
	} else {
		input, err = afero.ReadFile(fs, fname)
	}
	if err != nil {
		logger.Fatalf("Unable to read input: %v", err)
	}

	var password []byte
	if Args.PassFile != "" {
		password, err = readPassFile(fs, Args.PassFile)
	} else {
		password, err = promptPassword(!Args.Decrypt)
	}
	if err != nil {
		logger.Fatalf("Unable to read password: %v", err)
	}

	output, err := process(cfg, Args, password, input)
	wipe(password)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	switch {
	case Args.InPlace:
		tmp := fname + ".tmp"
		if err := afero.WriteFile(fs, tmp, output, 0600); err != nil {
			logger.Fatalf("Unable to write %s: %v", tmp, err)
		}
		var flags replacefile.Flag
		if Args.Backup {
			flags |= replacefile.KeepBackup
		}
		if err := replacefile.ReplaceFile(fname, tmp, fname+".bak", flags); err != nil {
			logger.Fatalf("Unable to replace %s: %v", fname, err)
		}
		logger.Debugf("Replaced %s in place", fname)
	case Args.Output != "":
		if err := afero.WriteFile(fs, Args.Output, output, 0600); err != nil {
			logger.Fatalf("Unable to write %s: %v", Args.Output, err)
		}
	default:
		if _, err := os.Stdout.Write(output); err != nil {
			logger.Fatalf("Unable to write output: %v", err)
		}
	}
}

func loadConfig() (*conf.Config, error) {
	path := Args.ConfPath
	if path == "" {
		path = defaultConfPath()
		if _, err := os.Stat(path); err != nil {
			// No config file is fine; run on defaults.
			return conf.New(nil), nil
		}
	}
	return conf.Load(path)
}

func wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
