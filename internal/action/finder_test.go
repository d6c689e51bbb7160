// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package action

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsController = `class ProductsController < ApplicationController
  # A point above the action "index"
  def index
    @products = Product.all
    # A point in the action "index"
  end
  # A point below the action "index"

  def create
    @product = Product.create(product_params)
    # A point in the action "create"
  end
end
`

func cursorAfter(t *testing.T, text, marker string) int {
	t.Helper()
	i := strings.Index(text, marker)
	require.GreaterOrEqual(t, i, 0, "marker %q not found", marker)
	return i + len(marker)
}

func TestRegexFinder_EnclosingAction(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		marker string
		want   string
		found  bool
	}{
		{"above first action", productsController, `above the action "index"`, "", false},
		{"inside index", productsController, `in the action "index"`, "index", true},
		{"below index takes the nearest header", productsController, `below the action "index"`, "index", true},
		{"inside create", productsController, `in the action "create"`, "create", true},
		{"class method", "class A\n  def self.build\n    # here", "# here", "build", true},
		{"predicate with modifier", "  private def show?\n    # here", "# here", "show?", true},
		{"bang with arguments", "  def update!(attrs)\n    # here", "# here", "update!", true},
		{"undef is not a header", "  undef index\n  # here", "# here", "", false},
		{"identifier containing def", "  undefined = 1\n  # here", "# here", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RegexFinder{}.EnclosingAction(tt.text, cursorAfter(t, tt.text, tt.marker))
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegexFinder_CursorBounds(t *testing.T) {
	f := RegexFinder{}

	got, ok := f.EnclosingAction(productsController, 0)
	assert.False(t, ok)
	assert.Empty(t, got)

	got, ok = f.EnclosingAction(productsController, -5)
	assert.False(t, ok)
	assert.Empty(t, got)

	got, ok = f.EnclosingAction(productsController, len(productsController)+100)
	assert.True(t, ok)
	assert.Equal(t, "create", got)
}
