// Released under an MIT license. See LICENSE.

package commands

import (
	"regexp"
)

//nolint:gochecknoglobals
var sendArgument = regexp.MustCompile(`send\s*\((.*?)\)`)

func compress(env Env, _ string) error {
	s := env.Session()
	s.Compress()
	s.Append("Output data compressed.")

	return nil
}

func send(env Env, text string) error {
	arg, ok := find(sendArgument, text)
	if !ok {
		return ErrMalformed
	}

	env.Session().Append("Sent argument: " + arg)

	return nil
}

func standalone(env Env, _ string) error {
	env.Session().Append("Standalone module created. Cannot connect to others.")

	return nil
}
