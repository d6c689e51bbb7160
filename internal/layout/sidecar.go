// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package layout

import "strings"

// FoldSidecar removes the duplicated last segment of a sidecar template
// path: "admin/card_component/card_component" becomes
// "admin/card_component". Paths whose last two segments differ are
// returned unchanged, so FoldSidecar(UnfoldSidecar(p)) == p for every p.
func FoldSidecar(p string) string {
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return p
	}
	dir, base := p[:i], p[i+1:]
	if dir == base || strings.HasSuffix(dir, "/"+base) {
		return dir
	}
	return p
}

// UnfoldSidecar moves a component path into its sidecar folder:
// "admin/card_component" becomes "admin/card_component/card_component".
func UnfoldSidecar(p string) string {
	base := p
	if i := strings.LastIndex(p, "/"); i >= 0 {
		base = p[i+1:]
	}
	return p + "/" + base
}
