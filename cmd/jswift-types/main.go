package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seitarof/jswift-types/internal/cli"
	"github.com/seitarof/jswift-types/internal/config"
	"github.com/seitarof/jswift-types/internal/report"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	l := config.NewFileLoader()
	rep := report.New(report.NewFileWriter(), os.Stdout)

	runner := cli.NewRunner(l, rep)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
