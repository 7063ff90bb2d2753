package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/guiguan/caster"
	"github.com/npillmayer/suffixtree/corpus"
	"github.com/npillmayer/suffixtree/tokens"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/

// ErrNotRegular is returned for files which are not regular files.
var ErrNotRegular = errors.New("textfile: not a regular file")

// ErrNoCorpus is returned when loading into a nil corpus.
var ErrNoCorpus = errors.New("textfile: no corpus to load into")

// ErrPipeline is returned when the loading pipeline cannot be set up.
var ErrPipeline = errors.New("textfile: cannot subscribe to line broadcast")

// Some constants for buffer size defaults
const (
	defaultBuffer = 64
	maxLineLength = 1048576
)

// Options control how a text file is loaded. A nil *Options selects defaults.
type Options struct {
	Tokenize  func(string) []string // splits a line into tokens, default tokens.Words
	KeepEmpty bool                  // add lines without tokens as empty documents
	Progress  func(lines int)       // called with the number of lines read so far
	Buffer    uint                  // capacity of subscriber channels
}

func (o *Options) normalized() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.Tokenize == nil {
		opts.Tokenize = tokens.Words
	}
	if opts.Buffer == 0 {
		opts.Buffer = defaultBuffer
	}
	return opts
}

// line is the message broadcast for every line of a file.
type line struct {
	no   int
	text string
}

// textFile represents an OS file which will be loaded into a corpus.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for lines read
}

// Load reads a text file and returns a new corpus with one document per line.
func Load(ctx context.Context, name string, opts *Options) (*corpus.Corpus, error) {
	c := corpus.New()
	if _, err := LoadInto(ctx, c, name, opts); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadInto reads a text file and adds one document per line to corpus c.
// It returns the IDs of the documents added, in line order.
//
// Reading happens in the background, but LoadInto will not return before the
// file has been indexed completely, ctx has been cancelled, or an error occurred.
// Opening of the file is always done synchronously.
func LoadInto(ctx context.Context, c *corpus.Corpus, name string, opts *Options) ([]uuid.UUID, error) {
	if c == nil {
		return nil, ErrNoCorpus
	}
	o := opts.normalized()
	pipeCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	tf, err := openFile(pipeCtx, name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	lines, ok := tf.cast.Sub(pipeCtx, o.Buffer)
	if !ok {
		return nil, errors.Join(ErrPipeline, ctx.Err())
	}
	var wg sync.WaitGroup
	if o.Progress != nil {
		progress, ok := tf.cast.Sub(pipeCtx, o.Buffer)
		if !ok {
			return nil, errors.Join(ErrPipeline, ctx.Err())
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			count := 0
			for range progress {
				count++
				o.Progress(count)
			}
		}()
	}
	done := make(chan error, 1)
	go func() {
		err := tf.readLines(pipeCtx)
		tf.cast.Close()
		done <- err
	}()
	var ids []uuid.UUID
	var addErr error
	for msg := range lines {
		if addErr != nil {
			continue // drain
		}
		l := msg.(line)
		seq := o.Tokenize(l.text)
		if len(seq) == 0 && !o.KeepEmpty {
			continue
		}
		id, err := c.Add(seq)
		if err != nil {
			addErr = fmt.Errorf("textfile: line %d of %s: %w", l.no, tf.path, err)
			cancel()
			continue
		}
		ids = append(ids, id)
	}
	readErr := <-done
	wg.Wait()
	switch {
	case addErr != nil:
		return ids, addErr
	case ctx.Err() != nil:
		return ids, ctx.Err()
	case readErr != nil:
		return ids, fmt.Errorf("textfile: error reading %s: %w", tf.path, readErr)
	}
	tracer().Infof("textfile: indexed %d lines of %s", len(ids), tf.path)
	return ids, nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when lines are read
	}
	return tf, nil
}

// readLines publishes the lines of a file, until EOF or cancellation.
func (tf *textFile) readLines(ctx context.Context) error {
	scanner := bufio.NewScanner(tf.file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	no := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		no++
		if !tf.cast.Pub(line{no: no, text: scanner.Text()}) {
			return nil
		}
	}
	tracer().Debugf("textfile: read %d lines of %d bytes from %s", no, tf.info.Size(), tf.path)
	return scanner.Err()
}
