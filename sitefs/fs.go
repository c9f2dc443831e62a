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

// Package sitefs provides the file systems siteconf reads config from and
// publishes resolved config to.
package sitefs

import (
	"github.com/nemesisdb/siteconf/common/paths"
	"github.com/spf13/afero"
)

// Os points to the (real) Os filesystem.
var Os = &afero.OsFs{}

// Fs holds the core filesystems used by siteconf.
type Fs struct {
	// Source is where config files are read from.
	// Note that this will always be a "plain" Afero filesystem:
	// * afero.OsFs when running in production
	// * afero.MemMapFs for many of the tests.
	Source afero.Fs

	// PublishDir is where resolved configs are written.
	// It's rooted at the publish dir (default <workingDir>/build) and is
	// only created on first write.
	PublishDir afero.Fs

	// The project's working dir. Relative config paths are resolved against it.
	WorkingDir string
}

// DefaultPublishDir is the publish dir used when none is configured.
const DefaultPublishDir = "build"

// NewDefault creates a new Fs with the OS file system
// as source and destination file systems.
func NewDefault(workingDir, publishDir string) *Fs {
	return newFs(Os, Os, workingDir, publishDir)
}

// NewFrom creates a new Fs based on the provided Afero Fs
// as source and destination file systems.
// Useful for testing.
func NewFrom(fs afero.Fs, workingDir, publishDir string) *Fs {
	return newFs(fs, fs, workingDir, publishDir)
}

func newFs(source, destination afero.Fs, workingDir, publishDir string) *Fs {
	if publishDir == "" {
		publishDir = DefaultPublishDir
	}
	absPublishDir := paths.AbsPathify(workingDir, publishDir)

	return &Fs{
		Source:     source,
		PublishDir: afero.NewBasePathFs(destination, absPublishDir),
		WorkingDir: workingDir,
	}
}

// AbsPath resolves filename against the working dir.
func (fs *Fs) AbsPath(filename string) string {
	return paths.AbsPathify(fs.WorkingDir, filename)
}
