package main

import (
	"context"
	"os"

	"github.com/ardnew/logtree/cli"
	"github.com/ardnew/logtree/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error("run failed", err) // rendered through its LogValue
		os.Exit(1)
	}
}
