package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tutils/tperm/cmd"
)

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	cmd.Execute()
}
