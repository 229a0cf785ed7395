package ytapp

import (
	"fmt"

	"github.com/Avinashricky211/Ytapp/internal/version"
)

type VersionCommand struct {
	Command
}

func (cmd *VersionCommand) Execute([]string) error {
	fmt.Print(version.Version())
	return nil
}
