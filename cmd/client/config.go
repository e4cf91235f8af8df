package main

import (
	"regexp"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"miniftp/internal/session"
)

const exampleInput = "client <domain/ip> <port> <put filename|get filename|list>"

type Options struct {
	Args struct {
		Host    string   `positional-arg-name:"host" description:"server domain or IP address"`
		Port    string   `positional-arg-name:"port" description:"server port"`
		Command string   `positional-arg-name:"command" description:"put, get or list"`
		Rest    []string `positional-arg-name:"filename"`
	} `positional-args:"yes"`
}

var hostPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]*$`)

func parseArgs(argv []string) (*Options, error) {
	opts := &Options{}
	if _, err := flags.ParseArgs(opts, argv); err != nil {
		return nil, err
	}
	if opts.Args.Host == "" || opts.Args.Port == "" || opts.Args.Command == "" {
		return nil, errors.Errorf("the domain/IP, port and command parameters are required. Example input: %s", exampleInput)
	}
	return opts, nil
}

func checkHost(host string) (string, error) {
	if strings.ToLower(host) != "localhost" &&
		(strings.Contains(host, " ") || !hostPattern.MatchString(host)) {
		return "", errors.New("the domain/IP address provided contains spaces and/or special characters; " +
			"allowed characters: letters, numbers, periods, dashes and underscores")
	}
	return host, nil
}

func checkPort(port string) (int, error) {
	if len(port) < 1 || len(port) > 5 {
		return 0, errors.New("the port parameter that has been provided is too short/long or is not a numerical value")
	}
	n := 0
	for _, r := range port {
		if r < '0' || r > '9' {
			return 0, errors.New("the port parameter that has been provided is too short/long or is not a numerical value")
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

func checkCommand(name string, rest []string) (session.Command, error) {
	switch strings.ToLower(name) {
	case "list":
		return session.Command{Kind: session.List}, nil
	case "put", "get":
		if len(rest) != 1 {
			return session.Command{}, errors.Errorf(
				"the %q command must be followed by the <filename> field. Example input: %s", name, exampleInput)
		}
		kind := session.Put
		if strings.ToLower(name) == "get" {
			kind = session.Get
		}
		return session.Command{Kind: kind, Filename: rest[0]}, nil
	}
	return session.Command{}, errors.Errorf(
		"the parameter %q is not supported by this client. Example input: %s", name, exampleInput)
}
