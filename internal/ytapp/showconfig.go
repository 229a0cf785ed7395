package ytapp

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

type ConfigCommand struct {
	Command
}

func (cmd *ConfigCommand) Execute([]string) error {
	defer cmd.Close()

	masked := *cmd.Config
	masked.Youtube.Client.Secret = mask(masked.Youtube.Client.Secret)
	masked.Youtube.OAuth.AccessToken = mask(masked.Youtube.OAuth.AccessToken)
	masked.Youtube.OAuth.RefreshToken = mask(masked.Youtube.OAuth.RefreshToken)

	m, err := yaml.Marshal(&masked)
	if err != nil {
		return err
	}

	fmt.Println(string(m))
	return nil
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}
