/*
NAME
  file.go

DESCRIPTION
  file.go opens a frequency-plan document from disk, picking JSON or YAML
  decoding based on the file extension.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package freqplan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a frequency plan document from path, using YAML decoding
// for .yml/.yaml extensions and JSON otherwise.
func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("freqplan: opening %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return Load(f)
	}
}
