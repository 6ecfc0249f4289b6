package commands

import (
	"fmt"
	"os"

	"mappins/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("mappins error", "err", err.Error())
	logger.Sync()
	fmt.Fprintln(os.Stderr, err) //nolint
	os.Exit(1)
}
