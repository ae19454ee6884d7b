// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods.
//
// scenectl's tree printer uses [Tabs] to indent each node by its depth
// when dumping the node tree for inspection.
package indent

import "strings"

// Tabs returns a string of n tabs.
func Tabs(n int) string {
	return strings.Repeat("\t", n)
}
