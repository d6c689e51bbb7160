// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/railnav/pkg/types"
)

var samplePaths = []string{
	"app/controllers/products_controller.rb",
	"app/controllers/admin/products_controller.rb",
	"app/views/products/index.html.erb",
	"spec/views/products/index.html.erb_spec.rb",
	"app/views/products/index.turbo_stream.erb",
	"spec/views/products/index.turbo_stream.erb_spec.rb",
	"app/views/products/index.html.slim",
	"app/views/layouts/application.html.haml",
	"app/models/product.rb",
	"spec/models/product_spec.rb",
	"test/models/product_test.rb",
	"app/models/concerns/sluggable.rb",
	"spec/requests/products_spec.rb",
	"test/controllers/products_controller_test.rb",
	"app/components/card_component.rb",
	"app/components/card_component.html.erb",
	"app/components/card_component/card_component.html.erb",
	"spec/components/card_component_spec.rb",
	"lib/tasks/import.rake",
	"/home/dev/test/shop/app/models/components/part.rb",
	"config/routes.rb",
}

func TestLayout_Predicates(t *testing.T) {
	l := New(types.Config{TemplateEngines: []string{"erb"}})

	tests := []struct {
		name  string
		check func(string) bool
		yes   []string
		no    []string
	}{
		{
			name:  "IsViewRelatedFile",
			check: l.IsViewRelatedFile,
			yes: []string{
				"app/controllers/products_controller.rb",
				"app/views/products/index.html.erb",
				"spec/views/products/index.html.erb_spec.rb",
				"app/views/products/index.turbo_stream.erb",
				"spec/views/products/index.turbo_stream.erb_spec.rb",
			},
			no: []string{"app/models/product.rb", "spec/models/product_spec.rb"},
		},
		{
			name:  "IsViewFile",
			check: l.IsViewFile,
			yes: []string{
				"app/views/products/index.html.erb",
				"spec/views/products/index.html.erb_spec.rb",
				"app/views/products/index.turbo_stream.erb",
				"spec/views/products/index.turbo_stream.erb_spec.rb",
			},
			no: []string{
				"app/controllers/products_controller.rb",
				"app/models/product.rb",
				"spec/models/product_spec.rb",
				"app/views/products/index.html.slim",
			},
		},
		{
			name:  "IsControllerFile",
			check: l.IsControllerFile,
			yes:   []string{"app/controllers/products_controller.rb", "/srv/shop/app/controllers/admin/users_controller.rb"},
			no: []string{
				"app/models/product.rb",
				"spec/models/product_spec.rb",
				"app/views/products/index.html.erb",
				"test/controllers/products_controller_test.rb",
				"app/controllers/_controller.rb",
			},
		},
		{
			name:  "IsControllerTestFile",
			check: l.IsControllerTestFile,
			yes:   []string{"spec/requests/products_spec.rb", "test/controllers/products_controller_test.rb"},
			no:    []string{"app/controllers/products_controller.rb", "spec/models/product_spec.rb"},
		},
		{
			name:  "IsHTMLViewFile",
			check: l.IsHTMLViewFile,
			yes:   []string{"app/views/products/index.html.erb", "spec/views/products/index.html.erb_spec.rb"},
			no: []string{
				"app/controllers/products_controller.rb",
				"app/views/products/index.turbo_stream.erb",
				"spec/views/products/index.turbo_stream.erb_spec.rb",
				"app/components/card_component.html.erb",
			},
		},
		{
			name:  "IsTurboStreamViewFile",
			check: l.IsTurboStreamViewFile,
			yes:   []string{"app/views/products/index.turbo_stream.erb", "spec/views/products/index.turbo_stream.erb_spec.rb"},
			no:    []string{"app/views/products/index.html.erb", "spec/views/products/index.html.erb_spec.rb"},
		},
		{
			name:  "IsModelFile",
			check: l.IsModelFile,
			yes:   []string{"app/models/product.rb", "spec/models/product_spec.rb", "test/models/product_test.rb"},
			no:    []string{"app/controllers/products_controller.rb", "app/views/products/index.html.erb"},
		},
		{
			name:  "IsComponentFile",
			check: l.IsComponentFile,
			yes:   []string{"app/components/card_component.rb", "spec/components/card_component_spec.rb"},
			no:    []string{"app/models/product.rb", "/home/dev/test/shop/app/models/components/part.rb"},
		},
		{
			name:  "IsTestFile",
			check: l.IsTestFile,
			yes: []string{
				"spec/models/product_spec.rb",
				"spec/views/products/index.html.erb_spec.rb",
				"spec/views/products/index.turbo_stream.erb_spec.rb",
				"test/controllers/products_controller_test.rb",
			},
			no: []string{
				"app/controllers/products_controller.rb",
				"app/models/product.rb",
				"app/views/products/index.turbo_stream.erb",
				"app/views/products/index.html.erb",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range tt.yes {
				assert.True(t, tt.check(p), p)
			}
			for _, p := range tt.no {
				assert.False(t, tt.check(p), p)
			}
		})
	}
}

func TestLayout_PredicatesAreConsistent(t *testing.T) {
	for _, engines := range [][]string{{"erb"}, {"erb", "slim", "haml"}} {
		l := New(types.Config{TemplateEngines: engines})
		for _, p := range samplePaths {
			assert.Equal(t, l.IsHTMLViewFile(p) || l.IsTurboStreamViewFile(p), l.IsViewFile(p), p)
			assert.False(t, l.IsModelFile(p) && l.IsComponentFile(p), p)
		}
	}
}

func TestLayout_EnginesDriveViewPredicates(t *testing.T) {
	erbOnly := New(types.Config{})
	withSlim := New(types.Config{TemplateEngines: []string{"erb", "slim"}})

	assert.False(t, erbOnly.IsHTMLViewFile("app/views/products/index.html.slim"))
	assert.True(t, withSlim.IsHTMLViewFile("app/views/products/index.html.slim"))
	assert.Equal(t, []string{"erb"}, erbOnly.Engines())
}

func TestLayout_Classify(t *testing.T) {
	l := New(types.Config{TemplateEngines: []string{"erb", "haml"}})

	tests := []struct {
		path string
		want types.Classification
	}{
		{"app/controllers/products_controller.rb", types.Controller},
		{"spec/requests/products_spec.rb", types.ControllerTest},
		{"test/controllers/products_controller_test.rb", types.ControllerTest},
		{"app/views/products/index.html.erb", types.HTMLView},
		{"app/views/layouts/application.html.haml", types.HTMLView},
		{"spec/views/products/create.turbo_stream.erb_spec.rb", types.TurboStreamView},
		{"app/models/product.rb", types.Model},
		{"app/components/card_component.html.erb", types.Component},
		{"config/routes.rb", types.Unrelated},
		{"app/assets/stylesheets/app.css", types.Unrelated},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Classify(tt.path))
		})
	}
}

func TestProjectRoot(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "/home/dev/shop/app/models/product.rb", want: "/home/dev/shop/"},
		{path: "app/models/product.rb", want: ""},
		{path: "/home/dev/test/shop/spec/models/product_spec.rb", want: "/home/dev/test/shop/"},
		{path: "/srv/app/app/controllers/products_controller.rb", want: "/srv/app/"},
		{path: "/home/dev/shop/lib/tasks/import.rake", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ProjectRoot(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrNoProjectRoot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit(t *testing.T) {
	loc, ok := Split("/home/dev/shop/spec/views/admin/products/index.html.erb_spec.rb")
	require.True(t, ok)
	assert.Equal(t, Location{
		Root: "/home/dev/shop/",
		Top:  "spec",
		Dir:  "views",
		Rest: "admin/products/index.html.erb_spec.rb",
	}, loc)
}
