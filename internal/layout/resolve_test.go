// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/railnav/internal/action"
	"github.com/petar-djukic/railnav/pkg/types"
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

func TestLayout_Resolve(t *testing.T) {
	l := New(types.Config{TemplateEngines: []string{"erb", "slim"}})

	tests := []struct {
		name string
		ec   types.EditorContext
		want types.ResolvedEntity
	}{
		{
			name: "html view",
			ec:   types.EditorContext{Path: "/shop/app/views/products/index.html.erb"},
			want: types.ResolvedEntity{Controller: "products", Action: "index"},
		},
		{
			name: "nested view spec",
			ec:   types.EditorContext{Path: "/shop/spec/views/admin/products/show.html.slim_spec.rb"},
			want: types.ResolvedEntity{Controller: "admin/products", Action: "show"},
		},
		{
			name: "turbo_stream partial",
			ec:   types.EditorContext{Path: "/shop/app/views/products/_row.turbo_stream.erb"},
			want: types.ResolvedEntity{Controller: "products", Action: "_row"},
		},
		{
			name: "request spec",
			ec:   types.EditorContext{Path: "/shop/spec/requests/admin/products_spec.rb"},
			want: types.ResolvedEntity{Controller: "admin/products"},
		},
		{
			name: "minitest controller test",
			ec:   types.EditorContext{Path: "/shop/test/controllers/products_controller_test.rb"},
			want: types.ResolvedEntity{Controller: "products"},
		},
		{
			name: "model",
			ec:   types.EditorContext{Path: "/shop/app/models/product.rb"},
			want: types.ResolvedEntity{ModelName: "product"},
		},
		{
			name: "namespaced model spec",
			ec:   types.EditorContext{Path: "/shop/spec/models/billing/invoice_spec.rb"},
			want: types.ResolvedEntity{ModelName: "billing/invoice"},
		},
		{
			name: "model test",
			ec:   types.EditorContext{Path: "/shop/test/models/product_test.rb"},
			want: types.ResolvedEntity{ModelName: "product"},
		},
		{
			name: "component ruby",
			ec:   types.EditorContext{Path: "/shop/app/components/ui/card_component.rb"},
			want: types.ResolvedEntity{ComponentPath: "ui/card_component"},
		},
		{
			name: "component template",
			ec:   types.EditorContext{Path: "/shop/app/components/ui/card_component.html.slim"},
			want: types.ResolvedEntity{ComponentPath: "ui/card_component"},
		},
		{
			name: "component spec",
			ec:   types.EditorContext{Path: "/shop/spec/components/ui/card_component_spec.rb"},
			want: types.ResolvedEntity{ComponentPath: "ui/card_component"},
		},
		{
			name: "sidecar template without sidecar layout stays nested",
			ec:   types.EditorContext{Path: "/shop/app/components/card_component/card_component.html.erb"},
			want: types.ResolvedEntity{ComponentPath: "card_component/card_component"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Resolve(tt.ec, action.RegexFinder{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayout_Resolve_ControllerAction(t *testing.T) {
	l := New(types.Config{})
	path := "/shop/app/controllers/products_controller.rb"

	tests := []struct {
		marker     string
		wantAction string
	}{
		{marker: `A point above the action "index"`, wantAction: ""},
		{marker: `A point in the action "index"`, wantAction: "index"},
		{marker: `A point below the action "index"`, wantAction: "index"},
		{marker: `A point in the action "create"`, wantAction: "create"},
	}

	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			ec := types.EditorContext{
				Path:   path,
				Text:   productsController,
				Cursor: cursorAfter(t, productsController, tt.marker),
			}
			got, err := l.Resolve(ec, action.RegexFinder{})
			require.NoError(t, err)
			assert.Equal(t, "products", got.Controller)
			assert.Equal(t, tt.wantAction, got.Action)
		})
	}
}

func TestLayout_Resolve_SidecarFolding(t *testing.T) {
	l := New(types.Config{UseSidecar: true})

	got, err := l.Resolve(types.EditorContext{
		Path: "/shop/app/components/ui/card_component/card_component.html.erb",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ui/card_component", got.ComponentPath)

	cands, err := l.Candidates("/shop/", types.TargetComponentView, got)
	require.NoError(t, err)
	assert.Equal(t, "/shop/app/components/ui/card_component/card_component.html.erb", cands[0])
}

func TestLayout_Resolve_Failures(t *testing.T) {
	l := New(types.Config{})

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "no project root", path: "/shop/lib/tasks/import.rake", wantErr: types.ErrNoProjectRoot},
		{name: "view without controller folder", path: "/shop/app/views/index.html.erb", wantErr: types.ErrUnresolved},
		{name: "model without ruby suffix", path: "/shop/app/models/README", wantErr: types.ErrUnresolved},
		{name: "component asset", path: "/shop/app/components/card_component.css", wantErr: types.ErrUnresolved},
		{name: "unrelated file under a known folder", path: "/shop/app/views/products/index.json.jbuilder", wantErr: types.ErrUnresolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Resolve(types.EditorContext{Path: tt.path}, action.RegexFinder{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
