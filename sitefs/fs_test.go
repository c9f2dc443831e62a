// Copyright 2019 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sitefs

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	f := NewDefault("/work", "")

	require.IsType(t, new(afero.OsFs), f.Source)
	require.IsType(t, new(afero.BasePathFs), f.PublishDir)
	require.Equal(t, "/work", f.WorkingDir)
}

func TestNewFrom(t *testing.T) {
	mfs := afero.NewMemMapFs()

	for _, test := range []struct {
		publishDir string
		expect     string
	}{
		{"", "/work/build/site.json"},
		{"out", "/work/out/site.json"},
		{"/var/www", "/var/www/site.json"},
	} {
		f := NewFrom(mfs, "/work", test.publishDir)
		require.Equal(t, mfs, f.Source)
		require.NoError(t, afero.WriteFile(f.PublishDir, "site.json", []byte("{}"), 0o644))

		exists, err := afero.Exists(mfs, filepath.FromSlash(test.expect))
		require.NoError(t, err)
		require.True(t, exists, test.expect)
	}
}

func TestAbsPath(t *testing.T) {
	f := NewFrom(afero.NewMemMapFs(), "/work", "")

	require.Equal(t, filepath.FromSlash("/work/site.toml"), f.AbsPath("site.toml"))
	require.Equal(t, filepath.FromSlash("/work/docs/site.toml"), f.AbsPath("./docs/site.toml"))
	require.Equal(t, filepath.FromSlash("/docs/site.toml"), f.AbsPath("/docs/../docs/site.toml"))
}
