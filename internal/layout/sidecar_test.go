// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldSidecar(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"card_component/card_component", "card_component"},
		{"ui/card_component/card_component", "ui/card_component"},
		{"ui/card_component", "ui/card_component"},
		{"card_component", "card_component"},
		{"ui/other/card_component", "ui/other/card_component"},
		{"x_card/card", "x_card/card"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldSidecar(tt.in))
		})
	}
}

func TestSidecar_RoundTrip(t *testing.T) {
	for _, p := range []string{"card_component", "ui/card_component", "a/b/c_component", "card/card"} {
		assert.Equal(t, p, FoldSidecar(UnfoldSidecar(p)), p)
	}
	assert.Equal(t, "ui/card_component/card_component", UnfoldSidecar("ui/card_component"))
}
