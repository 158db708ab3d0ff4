package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/nlatools/nla/internal/application/analyzer"
)

func main() {
	if err := analyzer.Start(); err != nil {
		log.WithError(err).Error("analyzer.Start()")
		os.Exit(1)
	}
}
