package keyfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bstree"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/

// pipelineCapacity is the number of parsed keys the reader goroutine may run
// ahead of the inserting goroutine.
const pipelineCapacity = 64

// ParseFunc converts a line of a key file into a key. Lines are handed over
// with surrounding white space removed.
type ParseFunc[K any] func(line string) (K, error)

// Strings is a ParseFunc for string keys. Every line is a key.
func Strings(line string) (string, error) {
	return line, nil
}

// Ints is a ParseFunc for decimal integer keys.
func Ints(line string) (int, error) {
	return strconv.Atoi(line)
}

// keyFile represents an OS file which will be loaded into a tree.
type keyFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async key loading
}

// message is published by the reader goroutine for every key line, and once
// at the end of the file.
type message[K any] struct {
	lineno int   // line number within the file, starting at 1
	key    K     // parsed key
	err    error // read or parse error; ends the stream
	eof    bool  // end of file has been reached
}

// Load reads a key file and inserts its keys into a new tree with
// configuration cfg.
//
// Errors reading the file, parsing a line or inserting a key abort loading.
// Errors concerning a line carry the file name and line number.
func Load[K any](name string, cfg bstree.Config[K], parse ParseFunc[K]) (*bstree.Tree[K], error) {
	tree, err := bstree.New(cfg)
	if err != nil {
		return nil, err
	}
	if _, err = LoadInto(context.Background(), tree, name, parse); err != nil {
		return nil, err
	}
	return tree, nil
}

// LoadInto reads a key file and inserts its keys into an existing tree. It
// returns the number of key lines processed. Keys already present in the tree
// count as processed.
//
// Cancelling ctx stops loading, leaving the keys inserted so far in the tree.
func LoadInto[K any](ctx context.Context, tree *bstree.Tree[K], name string, parse ParseFunc[K]) (int, error) {
	if tree == nil || parse == nil {
		return 0, errors.New("illegal argument: nil")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	kf, err := openFile(ctx, name)
	if err != nil {
		return 0, err
	}
	defer kf.file.Close()
	defer kf.cast.Close()
	// subscribe before the reader starts publishing
	ch, ok := kf.cast.Sub(ctx, pipelineCapacity)
	if !ok {
		return 0, fmt.Errorf("keyfile %s: cannot subscribe to reader", name)
	}
	go readKeys(kf, parse)
	count := 0
	for {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return count, fmt.Errorf("keyfile %s: reader stopped unexpectedly", name)
			}
			msg := m.(message[K])
			if msg.err != nil {
				return count, msg.err
			}
			if msg.eof {
				tracer().Infof("keyfile %s: %d keys loaded, tree size is %d", name, count, tree.Size())
				return count, nil
			}
			if err := tree.Insert(msg.key); err != nil {
				return count, fmt.Errorf("%s:%d: %w", name, msg.lineno, err)
			}
			count++
		}
	}
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*keyFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("keyfile %s: file is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	kf := &keyFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when keys are parsed
	}
	tracer().Debugf("keyfile %s: opened, %d bytes", name, fi.Size())
	return kf, nil
}

// --- File reading goroutine ------------------------------------------------

// readKeys scans the file line by line and publishes every parsed key. The
// caster is closed by the consumer; a failing Pub means the consumer has
// stopped listening.
func readKeys[K any](kf *keyFile, parse ParseFunc[K]) {
	scanner := bufio.NewScanner(kf.file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, err := parse(line)
		if err != nil {
			kf.cast.Pub(message[K]{lineno: lineno, err: fmt.Errorf("%s:%d: %w", kf.path, lineno, err)})
			return
		}
		if !kf.cast.Pub(message[K]{lineno: lineno, key: key}) {
			tracer().Debugf("keyfile %s: loading cancelled at line %d", kf.path, lineno)
			return
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("keyfile %s: read error after line %d: %v", kf.path, lineno, err)
		kf.cast.Pub(message[K]{lineno: lineno, err: fmt.Errorf("keyfile %s: %w", kf.path, err)})
		return
	}
	kf.cast.Pub(message[K]{lineno: lineno, eof: true})
}
