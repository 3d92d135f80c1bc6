package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errFalse) {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
		return
	}
}
