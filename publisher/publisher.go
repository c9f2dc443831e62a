package publisher

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/nemesisdb/siteconf/helpers"
	"github.com/nemesisdb/siteconf/minifiers"
	"github.com/spf13/afero"
)

// Publisher publishes a result file.
type Publisher interface {
	Publish(d Descriptor) error
}

// Descriptor describes the needed publishing chain for an item.
type Descriptor struct {
	// The content to publish.
	Src io.Reader

	// The media type of the content, e.g. application/json.
	MediaType string

	// Where to publish this content. This is a filesystem-relative path.
	TargetPath string

	// Enable to minify the output using the minifier registered for
	// MediaType.
	Minify bool
}

// NewDestinationPublisher creates a new DestinationPublisher writing to fs,
// which is usually rooted at the publish dir.
func NewDestinationPublisher(fs afero.Fs, min minifiers.Client) DestinationPublisher {
	return DestinationPublisher{fs: fs, min: min}
}

// DestinationPublisher is the default and currently only publisher. It
// prepares and publishes an item to the defined destination, e.g. /build.
type DestinationPublisher struct {
	fs  afero.Fs
	min minifiers.Client
}

// Publish applies any relevant transformations and writes the file
// to its destination, e.g. /build.
func (p DestinationPublisher) Publish(d Descriptor) error {
	if d.TargetPath == "" {
		return errors.New("publish: must provide a TargetPath")
	}

	src := d.Src

	if d.Minify || p.min.MinifyOutput {
		var b bytes.Buffer
		if err := p.min.Minify(d.MediaType, &b, d.Src); err != nil {
			return fmt.Errorf("failed to minify %q: %w", d.TargetPath, err)
		}

		// This is now what we write to disk.
		src = &b
	}

	f, err := helpers.OpenFileForWriting(p.fs, d.TargetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, src)

	return err
}
