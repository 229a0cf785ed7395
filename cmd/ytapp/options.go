package main

import (
	"github.com/Avinashricky211/Ytapp/internal/ytapp"
)

type Options struct {
	Common  *ytapp.Options        `group:"Common Options"`
	Serve   *ytapp.ServeCommand   `command:"serve" description:"run the web UI"`
	Setup   *ytapp.SetupCommand   `command:"setup" description:"authorize a Google account and print credentials"`
	Fetch   *ytapp.FetchCommand   `command:"fetch" description:"fetch one category of account data"`
	Config  *ytapp.ConfigCommand  `command:"config" description:"show current config"`
	Version *ytapp.VersionCommand `command:"version" description:"show version"`
}
