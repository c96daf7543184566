// Released under an MIT license. See LICENSE.

package commands

import (
	"regexp"
)

//nolint:gochecknoglobals
var nodeAPI = regexp.MustCompile(`NodeAPI\s*=\s*"(.*?)"`)

func connect(env Env, _ string) error {
	s := env.Session()

	// An empty reference is as good as none.
	if api := s.API(); api != "" {
		s.Append("Connecting nodes with API: " + api + ".")
	} else {
		s.Append("NodeAPI is not set. Unable to connect.")
	}

	return nil
}

func setAPI(env Env, text string) error {
	api, ok := find(nodeAPI, text)
	if !ok {
		return ErrMalformed
	}

	s := env.Session()
	s.SetAPI(api)
	s.Append("NodeAPI set to " + api + ".")

	return nil
}
