// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// bundleAliases maps key spellings found in bundle metadata files to the
// canonical keys. Apple bundle keys are accepted so an Info.plist exported to
// JSON or YAML can be shipped as-is.
var bundleAliases = map[string]string{
	"name":                       KeyName,
	"display_name":               KeyName,
	"cfbundledisplayname":        KeyName,
	"cfbundlename":               KeyName,
	"version":                    KeyVersion,
	"cfbundleshortversionstring": KeyVersion,
	"build":                      KeyBuild,
	"build_number":               KeyBuild,
	"cfbundleversion":            KeyBuild,
	"date":                       KeyDate,
	"build_date":                 KeyDate,
	"builddate":                  KeyDate,
	"commit":                     KeyCommit,
}

// commitAliases maps key spellings found in build-generated commit records.
var commitAliases = map[string]string{
	"commit":     KeyCommit,
	"git_commit": KeyCommit,
	"gitcommit":  KeyCommit,
	"revision":   KeyCommit,
	"sha":        KeyCommit,
}

// BundleFile returns a [Provider] reading a bundle metadata file at path.
// The file is a YAML mapping (JSON is accepted as a YAML subset).
func BundleFile(path string) Provider {
	return &fileProvider{path: path, aliases: bundleAliases}
}

// CommitFile returns a [Provider] reading a build-generated commit record at
// path, such as a file produced by
//
//	echo "commit: $(git rev-parse --short HEAD)" > commit.yaml
func CommitFile(path string) Provider {
	return &fileProvider{path: path, aliases: commitAliases}
}

type fileProvider struct {
	path    string
	aliases map[string]string
}

// Metadata implements [Provider]. Keys are matched case-insensitively and
// unknown keys are ignored. Scalar values of any YAML type are kept in their
// textual form, so a build number written as 42 reads as "42".
func (p *fileProvider) Metadata() (Metadata, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file %q: %w", p.path, err)
	}

	return decode(data, p.aliases)
}

func decode(data []byte, aliases map[string]string) (Metadata, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Metadata{}, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	if len(doc.Content) == 0 {
		return Metadata{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: got yaml kind %d", ErrNotMapping, root.Kind)
	}

	m := Metadata{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if valueNode.Kind != yaml.ScalarNode {
			continue
		}

		canonical, ok := aliases[strings.ToLower(strings.TrimSpace(keyNode.Value))]
		if !ok {
			continue
		}
		if _, set := m[canonical]; set {
			continue
		}

		m[canonical] = strings.TrimSpace(valueNode.Value)
	}

	return m, nil
}
