package ytapp

import (
	"fmt"

	"golang.org/x/oauth2"
	"gopkg.in/yaml.v2"

	yt "github.com/Avinashricky211/Ytapp/internal/youtube"
)

// setupRedirectURL is the loopback redirect of the CLI flow. It must be
// registered for the OAuth client in the Google Cloud Console.
const setupRedirectURL = "http://127.0.0.1:7798"

type SetupCommand struct {
	Command
}

func (cmd *SetupCommand) Execute([]string) error {
	defer cmd.Close()

	config, err := yt.NewConfig(cmd.Config.Youtube.Credentials(), cmd.Config.Youtube.Scopes, setupRedirectURL)
	if err != nil {
		return err
	}

	tok, err := yt.NewToken(cmd.Ctx, config)
	if err != nil {
		return err
	}
	if err := printCreds(tok); err != nil {
		return err
	}
	return nil
}

func printCreds(token *oauth2.Token) error {
	cfg := struct {
		Youtube struct {
			OAuth *OAuth `yaml:"oauth"`
		} `yaml:"youtube"`
	}{}
	cfg.Youtube.OAuth = NewCredentials(token)

	m, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Print("Add the following to the config file:\n\n")
	fmt.Println(string(m))

	return nil
}
