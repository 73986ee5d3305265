package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/vcalc/cli"
	"github.com/ardnew/vcalc/lang"
	"github.com/ardnew/vcalc/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		// Diagnostics are for the user, not the log.
		var diag *lang.Error
		if errors.As(err, &diag) {
			fmt.Fprintln(os.Stderr, diag)
		} else {
			log.Error("run failed", slog.Any("error", err))
		}

		os.Exit(1)
	}
}
