// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package txn

import (
	"errors"
	"fmt"

	"cogentcore.org/scene/path"
)

// ErrNodeNotFound is returned when a transaction targets a path with
// no corresponding node in the tree.
var ErrNodeNotFound = errors.New("txn: node not found")

func errNodeNotFound(p string) error {
	return fmt.Errorf("%w: %s", ErrNodeNotFound, p)
}

func newPath(parts []string) (path.Path, error) {
	return path.New(parts...)
}
