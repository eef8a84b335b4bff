// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

func parseTOML(data []byte) (*Settings, error) {
	var s Settings
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
